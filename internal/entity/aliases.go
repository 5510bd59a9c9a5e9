package entity

// companyAliases maps lowercase names, products and people to a ticker.
// Matching is by substring over lowercased text.
var companyAliases = map[string]string{
	"apple": "AAPL", "iphone": "AAPL", "ipad": "AAPL", "macbook": "AAPL",
	"mac": "AAPL", "tim cook": "AAPL", "app store": "AAPL", "apple vision": "AAPL",

	"microsoft": "MSFT", "windows": "MSFT", "azure": "MSFT", "xbox": "MSFT",
	"satya nadella": "MSFT", "linkedin": "MSFT", "teams": "MSFT", "copilot": "MSFT",
	"bing": "MSFT", "openai": "MSFT",

	"google": "GOOGL", "alphabet": "GOOGL", "youtube": "GOOGL", "android": "GOOGL",
	"chrome": "GOOGL", "waymo": "GOOGL", "sundar pichai": "GOOGL", "deepmind": "GOOGL",
	"gemini ai": "GOOGL",

	"amazon": "AMZN", "aws": "AMZN", "prime": "AMZN", "alexa": "AMZN",
	"andy jassy": "AMZN", "whole foods": "AMZN",

	"nvidia": "NVDA", "geforce": "NVDA", "cuda": "NVDA", "jensen huang": "NVDA",
	"rtx": "NVDA",

	"meta": "META", "facebook": "META", "instagram": "META", "whatsapp": "META",
	"mark zuckerberg": "META", "zuckerberg": "META", "metaverse": "META", "threads app": "META",

	"tesla": "TSLA", "elon musk": "TSLA", "musk": "TSLA", "cybertruck": "TSLA",
	"model 3": "TSLA", "model y": "TSLA", "autopilot": "TSLA", "supercharger": "TSLA",
	"spacex": "TSLA",

	"netflix": "NFLX",

	"amd": "AMD", "advanced micro devices": "AMD", "radeon": "AMD", "ryzen": "AMD",
	"lisa su": "AMD", "epyc": "AMD",

	"intel": "INTC", "pat gelsinger": "INTC", "core ultra": "INTC",

	"paypal": "PYPL", "venmo": "PYPL",

	"adobe": "ADBE", "photoshop": "ADBE", "creative cloud": "ADBE",

	"cisco": "CSCO", "webex": "CSCO",

	"comcast": "CMCSA", "nbcuniversal": "CMCSA", "nbc": "CMCSA", "peacock": "CMCSA",

	"pepsico": "PEP", "pepsi": "PEP", "frito-lay": "PEP", "gatorade": "PEP",

	"costco": "COST",

	"t-mobile": "TMUS",

	"broadcom": "AVGO", "vmware": "AVGO",

	"texas instruments": "TXN",

	"qualcomm": "QCOM", "snapdragon": "QCOM",

	"jpmorgan": "JPM", "jp morgan": "JPM", "jamie dimon": "JPM", "chase": "JPM",
	"j.p. morgan": "JPM",

	"visa": "V",

	"johnson & johnson": "JNJ", "johnson and johnson": "JNJ", "j&j": "JNJ",

	"walmart": "WMT", "wal-mart": "WMT",

	"procter & gamble": "PG", "procter and gamble": "PG", "p&g": "PG",

	"mastercard": "MA",

	"unitedhealth": "UNH", "united health": "UNH", "unitedhealthcare": "UNH",

	"home depot": "HD",

	"disney": "DIS", "walt disney": "DIS", "disney+": "DIS", "disney plus": "DIS",
	"hulu": "DIS", "espn": "DIS",

	"bank of america": "BAC",

	"exxon": "XOM", "exxonmobil": "XOM", "exxon mobil": "XOM",

	"chevron": "CVX",

	"coca-cola": "KO", "coca cola": "KO", "coke": "KO",

	"pfizer": "PFE",

	"merck": "MRK", "keytruda": "MRK",

	"abbott": "ABT", "abbott labs": "ABT", "abbott laboratories": "ABT",

	"verizon": "VZ",

	"at&t": "T", "att": "T",

	"nike": "NKE", "jordan brand": "NKE",

	"mcdonald's": "MCD", "mcdonalds": "MCD", "mcdonald": "MCD",
}
