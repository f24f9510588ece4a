package coingecko

// simplePriceResponse models the /simple/price payload: a map of coin ID to
// the requested vs-currency fields, e.g.
//
//	{"bitcoin": {"krw": 126000000, "usd": 91000, "krw_24h_change": 1.8}}
//
// Field names depend on the requested currencies, so the inner object is
// decoded as a generic map.
type simplePriceResponse map[string]map[string]float64

// symbolToID maps ticker symbols to CoinGecko coin IDs. Symbols outside this
// table resolve to no data rather than an error.
var symbolToID = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"BNB":   "binancecoin",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"XRP":   "ripple",
	"TRX":   "tron",
	"ETC":   "ethereum-classic",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"FIL":   "filecoin",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"SOL":   "solana",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"SHIB":  "shiba-inu",
	"UNI":   "uniswap",
	"LINK":  "chainlink",
	"ATOM":  "cosmos",
	"LTC":   "litecoin",
}
