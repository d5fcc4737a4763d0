package universe

// staticList is the guaranteed terminal fallback: the most liquid NSE names,
// used when every online source fails.
var staticList = []string{
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "ICICIBANK", "HINDUNILVR", "ITC",
	"SBIN", "BHARTIARTL", "KOTAKBANK", "LT", "AXISBANK", "ASIANPAINT", "MARUTI",
	"SUNPHARMA", "TITAN", "ULTRACEMCO", "NESTLEIND", "WIPRO", "HCLTECH",
	"TECHM", "BAJFINANCE", "BAJAJFINSV", "ONGC", "NTPC", "POWERGRID", "COALINDIA",
	"TATAMOTORS", "TATASTEEL", "JSWSTEEL", "HINDALCO", "VEDL", "ADANIENT",
	"ADANIPORTS", "ADANIGREEN", "ADANITRANS", "ADANIPOWER", "SIEMENS", "ABB",
	"HAVELLS", "VOLTAS", "WHIRLPOOL", "BLUESTARCO", "CROMPTON", "ORIENTELEC",
	"DIVISLAB", "DRREDDY", "CIPLA", "APOLLOHOSP", "FORTIS", "MAXHEALTH",
	"AUROPHARMA", "LUPIN", "TORNTPHARM", "ALKEM", "BIOCON", "GLENMARK",
	"PIDILITIND", "BERGEPAINT", "KANSAINER", "AKZONOBEL", "INDIGO", "SPICEJET",
	"IRCTC", "CONCOR", "GMRINFRA", "IRB", "KNR", "ASHOKA", "NHAI",
	"HDFCLIFE", "SBILIFE", "ICICIGI", "NIACL", "STARHEALTH", "GODIGIT",
	"MUTHOOTFIN", "BAJAJHLDNG", "CHOLAFIN", "M&MFIN", "SUNDARMFIN",
	"SHRIRAMFIN", "LICHSGFIN", "PNBHOUSING", "CANFINHOME", "AAVAS",
	"PAGEIND", "ABFRL", "TRENT", "DMART", "VMART", "SHOPERSTOP", "BATA",
	"RELAXO", "METROBRAND", "CAMPUS", "GUJGASLTD", "IGL", "MGL", "ATGL",
	"ZOMATO", "PAYTM", "NYKAA", "POLICYBZR", "CARTRADE", "EASEMYTRIP",
	"INFOEDGE", "JUSTDIAL", "MATRIMONY", "AFFLE", "NAZARA", "TANLA",
	"PERSISTENT", "MPHASIS", "LTTS", "COFORGE", "NIIT", "INTELLECT",
	"M&M", "ESCORTS", "TRACTORS", "SONACOMS", "MOTHERSON", "BOSCHLTD",
	"BHARATFORG", "TIINDIA", "APTUS", "PRICOL", "SUPRAJIT", "ENDURANCE",
	"TATAPOWER", "CESC", "TORNTPOWER", "JSPL", "SAIL", "NATIONALUM",
	"HINDZINC", "MOIL", "GMDC", "SANDUMA", "GRAPHITE", "GRSE", "BEL",
	"HAL", "BHEL", "BEML", "MIDHANI", "MAZAGON", "COCHINSHIP",
	"UPL", "PI", "RALLIS", "DHANUKA", "INSECTICIDE", "BAYER", "SUMICHEM",
	"JKCEMENT", "RAMCOCEM", "HEIDELBERG", "PRISM", "ORIENTCEM", "STAR",
	"ZEEL", "PVRINOX", "INOXWIND", "NETWORK18", "TV18BRDCST", "SUNTV",
	"JUBLFOOD", "WESTLIFE", "SAPPHIRE", "DEVYANI", "RBA", "BARBEQUE",
	"CLEAN", "SUDARSCHEM", "AARTI", "VINATI", "DEEPAKNITRITE", "BALCHEMLTD",
	"SRF", "ATUL", "NAVINFLUOR", "ALKYLAMINE", "FINEORG", "GALAXYSURF",
}

// StaticSymbols returns the built-in exchange-qualified symbol list.
func StaticSymbols() []string {
	symbols := make([]string, len(staticList))
	for i, s := range staticList {
		symbols[i] = s + ".NS"
	}
	return symbols
}
