package sentiment

// financialLexicon maps lowercase words and phrases to a score in [-1,1].
var financialLexicon = map[string]float64{
	"soar": 0.9, "soars": 0.9, "soared": 0.9, "soaring": 0.9,
	"surge": 0.85, "surges": 0.85, "surged": 0.85, "surging": 0.85,
	"skyrocket": 0.9, "skyrockets": 0.9, "skyrocketed": 0.9, "rally": 0.8,
	"rallies": 0.8, "rallied": 0.8, "rallying": 0.8, "boom": 0.8,
	"booming": 0.8, "booms": 0.8, "breakout": 0.75, "breakthrough": 0.8,
	"outperform": 0.7, "outperforms": 0.7, "outperformed": 0.7, "beat": 0.65,
	"beats": 0.65, "beating": 0.65, "exceed": 0.65, "exceeds": 0.65,
	"exceeded": 0.65, "exceeding": 0.65, "record": 0.6, "all-time high": 0.85,
	"bullish": 0.75, "upgrade": 0.7, "upgraded": 0.7, "upgrades": 0.7,
	"profit": 0.6, "profits": 0.6, "profitable": 0.65, "profitability": 0.6,
	"revenue growth": 0.7, "earnings beat": 0.75, "strong": 0.5, "strength": 0.5,
	"robust": 0.55, "optimistic": 0.6, "optimism": 0.6, "upbeat": 0.55,
	"momentum": 0.5, "accelerate": 0.6, "accelerates": 0.6, "accelerating": 0.6,
	"innovation": 0.5, "innovative": 0.5, "dividend": 0.4, "buyback": 0.5,
	"repurchase": 0.5, "expansion": 0.5, "expand": 0.45, "expands": 0.45,
	"expanding": 0.45, "recovery": 0.55, "recover": 0.5, "recovers": 0.5,
	"recovering": 0.5, "gain": 0.55, "gains": 0.55, "gained": 0.55,
	"gaining": 0.55, "jump": 0.6, "jumps": 0.6, "jumped": 0.6,
	"jumping": 0.6, "climb": 0.5, "climbs": 0.5, "climbed": 0.5,
	"climbing": 0.5, "rise": 0.5, "rises": 0.5, "rising": 0.5,
	"risen": 0.5, "up": 0.3, "higher": 0.35, "high": 0.25,
	"positive": 0.4, "growth": 0.5, "growing": 0.45, "grew": 0.45,
	"grow": 0.4, "boost": 0.55, "boosts": 0.55, "boosted": 0.55,
	"boosting": 0.55, "win": 0.5, "wins": 0.5, "winning": 0.5,
	"won": 0.5, "success": 0.55, "successful": 0.55, "demand": 0.4,
	"opportunity": 0.45, "opportunities": 0.45, "approval": 0.5, "approved": 0.55,
	"acquisition": 0.4, "acquire": 0.4, "acquires": 0.4, "acquired": 0.4,
	"merger": 0.35, "deal": 0.35, "partnership": 0.4, "stable": 0.25,
	"stability": 0.25, "steady": 0.25, "resilient": 0.35, "resilience": 0.35,
	"improve": 0.4, "improves": 0.4, "improved": 0.4, "improving": 0.4,
	"increase": 0.35, "increases": 0.35, "increased": 0.35, "increasing": 0.35,
	"launch": 0.35, "launches": 0.35, "launched": 0.35, "invest": 0.3,
	"investment": 0.3, "investing": 0.3, "confident": 0.4, "confidence": 0.4,
	"crash": -0.9, "crashes": -0.9, "crashed": -0.9, "crashing": -0.9,
	"plunge": -0.85, "plunges": -0.85, "plunged": -0.85, "plunging": -0.85,
	"collapse": -0.85, "collapses": -0.85, "collapsed": -0.85, "tank": -0.8,
	"tanks": -0.8, "tanked": -0.8, "tanking": -0.8, "tumble": -0.75,
	"tumbles": -0.75, "tumbled": -0.75, "tumbling": -0.75, "plummet": -0.85,
	"plummets": -0.85, "plummeted": -0.85, "selloff": -0.7, "sell-off": -0.7,
	"bearish": -0.75, "bear market": -0.8, "downgrade": -0.7, "downgraded": -0.7,
	"downgrades": -0.7, "bankruptcy": -0.95, "bankrupt": -0.95, "default": -0.8,
	"defaults": -0.8, "defaulted": -0.8, "recession": -0.75, "recessionary": -0.7,
	"layoff": -0.6, "layoffs": -0.65, "laid off": -0.6, "loss": -0.55,
	"losses": -0.55, "miss": -0.55, "misses": -0.55, "missed": -0.55,
	"missing": -0.4, "fraud": -0.9, "scandal": -0.8, "investigation": -0.5,
	"lawsuit": -0.55, "litigation": -0.5, "sued": -0.55, "fine": -0.45,
	"fined": -0.5, "penalty": -0.5, "penalties": -0.5, "debt": -0.35,
	"overvalued": -0.55, "decline": -0.5, "declines": -0.5, "declined": -0.5,
	"declining": -0.5, "drop": -0.5, "drops": -0.5, "dropped": -0.5,
	"dropping": -0.5, "fall": -0.5, "falls": -0.5, "fell": -0.5,
	"falling": -0.5, "sink": -0.6, "sinks": -0.6, "sank": -0.6,
	"sinking": -0.6, "slide": -0.5, "slides": -0.5, "slid": -0.5,
	"sliding": -0.5, "slump": -0.6, "slumps": -0.6, "slumped": -0.6,
	"slumping": -0.6, "weak": -0.45, "weakness": -0.45, "weaken": -0.45,
	"down": -0.3, "lower": -0.35, "low": -0.25, "negative": -0.4,
	"shrink": -0.5, "shrinks": -0.5, "shrank": -0.5, "shrinking": -0.5,
	"cut": -0.4, "cuts": -0.4, "cutting": -0.4, "risk": -0.3,
	"risks": -0.3, "risky": -0.35, "warning": -0.5, "warn": -0.5,
	"warns": -0.5, "warned": -0.5, "concern": -0.35, "concerns": -0.35,
	"concerned": -0.35, "fear": -0.45, "fears": -0.45, "fearful": -0.5,
	"uncertainty": -0.4, "uncertain": -0.4, "volatile": -0.35, "volatility": -0.35,
	"inflation": -0.35, "inflationary": -0.35, "tariff": -0.4, "tariffs": -0.4,
	"sanctions": -0.45, "shortage": -0.4, "shortages": -0.4, "delay": -0.35,
	"delayed": -0.35, "delays": -0.35, "recall": -0.5, "recalls": -0.5,
	"recalled": -0.5, "shutdown": -0.55, "closure": -0.5, "close": -0.2,
	"struggle": -0.45, "struggles": -0.45, "struggling": -0.45, "disappoint": -0.55,
	"disappoints": -0.55, "disappointed": -0.55, "disappointing": -0.55, "underperform": -0.55,
	"underperforms": -0.55, "underperformed": -0.55, "flat": -0.05, "unchanged": 0.0,
	"mixed": -0.05, "hold": 0.0, "maintain": 0.1, "maintains": 0.1,
	"report": 0.0, "reports": 0.0, "reported": 0.0, "announce": 0.1,
	"announces": 0.1, "announced": 0.1, "expect": 0.1, "expects": 0.1,
	"expected": 0.05, "rate hike": -0.45, "rate cut": 0.5, "rate increase": -0.4,
	"hawkish": -0.4, "dovish": 0.4, "tighten": -0.35, "tightening": -0.35,
	"easing": 0.4, "stimulus": 0.45,

	// general evaluative words
	"good": 0.4, "great": 0.6, "excellent": 0.7, "better": 0.35, "best": 0.45,
	"bad": -0.45, "poor": -0.45, "terrible": -0.7, "worse": -0.4, "worst": -0.55,
}

var negationWords = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nobody": true, "nothing": true,
	"nowhere": true, "nor": true, "cannot": true, "can't": true, "won't": true, "don't": true,
	"doesn't": true, "didn't": true, "wasn't": true, "weren't": true, "isn't": true, "aren't": true,
	"wouldn't": true, "shouldn't": true, "couldn't": true, "hardly": true, "barely": true, "scarcely": true,
	"fail": true, "fails": true, "failed": true, "failing": true,
}

// intensifiers scale the sentiment token that follows them
var intensifiers = map[string]float64{
	"very": 1.3, "extremely": 1.5, "significantly": 1.4, "sharply": 1.4,
	"dramatically": 1.5, "massively": 1.5, "strongly": 1.3, "highly": 1.3,
	"deeply": 1.3, "substantially": 1.3, "considerably": 1.25, "slightly": 0.6,
	"marginally": 0.5, "somewhat": 0.7, "modestly": 0.7,
}
