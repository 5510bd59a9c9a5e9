package entity

// capitalized words that start sentences or name non-companies
var commonProperNouns = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true, "Friday": true, "Saturday": true, "Sunday": true, "January": true,
	"February": true, "March": true, "April": true, "May": true, "June": true, "July": true, "August": true, "September": true,
	"October": true, "November": true, "December": true, "Market": true, "Markets": true, "Stock": true, "Stocks": true, "Shares": true,
	"Share": true, "Trade": true, "Trading": true, "Report": true, "Revenue": true, "Quarter": true, "Quarterly": true, "Annual": true,
	"Earnings": true, "Profit": true, "Growth": true, "Sales": true, "Analyst": true, "Analysts": true, "Investors": true, "Investor": true,
	"Price": true, "Prices": true, "Rate": true, "Rates": true, "Index": true, "Funds": true, "Fund": true, "Bond": true,
	"Bonds": true, "Wall": true, "Street": true, "Exchange": true, "Global": true, "World": true, "International": true, "Today": true,
	"Yesterday": true, "Tomorrow": true, "According": true, "Reuters": true, "Bloomberg": true, "The": true, "And": true, "For": true,
	"But": true, "Not": true, "All": true, "Can": true, "Was": true, "One": true, "Our": true, "Out": true,
	"Its": true, "Has": true, "His": true, "How": true, "New": true, "Now": true, "Old": true, "See": true,
	"Way": true, "Who": true, "Did": true, "Get": true, "Let": true, "Say": true, "She": true, "Too": true,
	"Use": true, "After": true, "Also": true, "Most": true, "Some": true, "What": true, "When": true, "With": true,
	"More": true, "From": true, "Over": true, "Into": true, "Just": true, "Than": true, "Very": true, "About": true,
	"Before": true, "Could": true, "Every": true, "First": true, "Major": true, "Other": true, "Since": true, "Their": true,
	"These": true, "Those": true, "Under": true, "Where": true, "While": true, "Would": true, "Should": true, "North": true,
	"South": true, "East": true, "West": true, "Chief": true, "President": true, "Chairman": true, "Board": true, "Company": true,
	"Companies": true, "Data": true, "Technology": true, "Technologies": true, "Capital": true, "Group": true, "Inc": true, "Corp": true,
	"Corporation": true, "Limited": true, "Partners": true, "Holdings": true, "Rally": true, "Rallied": true, "Rallying": true, "Decline": true,
	"Declined": true, "Declining": true, "Surge": true, "Surged": true, "Surging": true, "Drop": true, "Dropped": true, "Dropping": true,
	"Rise": true, "Rising": true, "Risen": true, "Fall": true, "Falling": true, "Fell": true, "Gain": true, "Gained": true,
	"Gaining": true, "Loss": true, "Lost": true, "Losing": true, "Jump": true, "Jumped": true, "Jumping": true, "Slide": true,
	"Slid": true, "Sliding": true, "Boost": true, "Boosted": true, "Climb": true, "Climbed": true, "Plunge": true, "Plunged": true,
	"Beat": true, "Missed": true, "Exceeded": true, "Cut": true, "Raised": true, "Lower": true, "Higher": true, "Record": true,
	"Sell": true, "Buy": true, "Hold": true, "Yield": true, "Yields": true, "Chair": true, "Dovish": true, "Hawkish": true,
	"Bullish": true, "Bearish": true, "Soaring": true, "Soared": true, "Warning": true, "Alert": true, "Crisis": true, "Impact": true,
	"Shift": true, "Signal": true, "Signals": true, "Expected": true, "Announced": true, "Reported": true, "Filed": true, "Approved": true,
	"Denied": true, "Deal": true, "Merger": true, "Acquisition": true, "Partnership": true, "Launch": true, "Launched": true, "Federal": true,
	"Reserve": true, "Central": true, "Treasury": true, "Congress": true, "Senate": true, "Consensus": true, "Inflation": true, "Recession": true,
	"Unemployment": true, "Economy": true, "Sector": true, "Industry": true, "Regulatory": true, "Commission": true, "Authority": true,
}

// uppercase runs that are abbreviations rather than tickers
var commonUpperWords = map[string]bool{
	"US": true, "USA": true, "UK": true, "EU": true, "UN": true, "CEO": true, "CFO": true, "COO": true, "CTO": true, "CMO": true,
	"IPO": true, "GDP": true, "SEC": true, "FBI": true, "CIA": true, "NSA": true, "DOJ": true, "IRS": true, "EPA": true, "FDA": true,
	"FAA": true, "FCC": true, "FTC": true, "DOD": true, "NASA": true, "OPEC": true, "NATO": true, "ETF": true, "ESG": true, "CPI": true,
	"PPI": true, "PMI": true, "PCE": true, "NYSE": true, "NASDAQ": true, "DJIA": true, "AI": true, "EV": true, "EVS": true, "IOT": true,
	"IT": true, "HR": true, "PR": true, "VP": true, "II": true, "III": true, "IV": true, "AM": true, "PM": true, "YOY": true,
	"QOQ": true, "MOM": true, "ATH": true, "ATL": true, "EPS": true, "PE": true, "ROI": true, "ROE": true, "YTD": true, "MTD": true,
	"QTD": true, "M&A": true, "R&D": true, "B2B": true, "B2C": true, "DC": true, "APR": true, "AUG": true, "DEC": true, "FEB": true,
	"JAN": true, "JUL": true, "JUN": true, "MAR": true, "NOV": true, "OCT": true, "SEP": true, "MON": true, "TUE": true, "WED": true,
	"THU": true, "FRI": true, "SAT": true, "SUN": true,
}
