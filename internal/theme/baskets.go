package theme

type weight struct {
	ticker string
	weight float64
}

// baskets maps a lowercase keyword to the tickers it implies.
var baskets = map[string][]weight{
	// semiconductors & chips
	"semiconductor":  {{"NVDA", 1.0}, {"AMD", 0.9}, {"INTC", 0.85}, {"AVGO", 0.8}, {"TXN", 0.7}, {"QCOM", 0.7}},
	"semiconductors": {{"NVDA", 1.0}, {"AMD", 0.9}, {"INTC", 0.85}, {"AVGO", 0.8}, {"TXN", 0.7}, {"QCOM", 0.7}},
	"chip":           {{"NVDA", 0.9}, {"AMD", 0.85}, {"INTC", 0.85}, {"AVGO", 0.75}, {"TXN", 0.7}, {"QCOM", 0.7}},
	"chips":          {{"NVDA", 0.9}, {"AMD", 0.85}, {"INTC", 0.85}, {"AVGO", 0.75}, {"TXN", 0.7}, {"QCOM", 0.7}},
	"chipmaker":      {{"NVDA", 0.95}, {"AMD", 0.9}, {"INTC", 0.9}, {"AVGO", 0.8}, {"TXN", 0.75}, {"QCOM", 0.75}},
	"gpu":            {{"NVDA", 1.0}, {"AMD", 0.8}, {"INTC", 0.5}},
	"gpus":           {{"NVDA", 1.0}, {"AMD", 0.8}, {"INTC", 0.5}},
	"graphics card":  {{"NVDA", 1.0}, {"AMD", 0.8}},
	"microchip":      {{"NVDA", 0.8}, {"AMD", 0.8}, {"INTC", 0.85}, {"AVGO", 0.8}, {"TXN", 0.8}, {"QCOM", 0.75}},
	"microchips":     {{"NVDA", 0.8}, {"AMD", 0.8}, {"INTC", 0.85}, {"AVGO", 0.8}, {"TXN", 0.8}, {"QCOM", 0.75}},
	"processor":      {{"INTC", 0.9}, {"AMD", 0.9}, {"QCOM", 0.7}, {"NVDA", 0.6}},
	"processors":     {{"INTC", 0.9}, {"AMD", 0.9}, {"QCOM", 0.7}, {"NVDA", 0.6}},
	"cpu":            {{"INTC", 0.95}, {"AMD", 0.95}},
	"data center":    {{"NVDA", 0.9}, {"AMD", 0.7}, {"INTC", 0.6}, {"MSFT", 0.5}, {"AMZN", 0.5}, {"GOOGL", 0.4}},

	// ai & machine learning
	"artificial intelligence": {{"NVDA", 0.95}, {"MSFT", 0.8}, {"GOOGL", 0.8}, {"META", 0.6}, {"AMD", 0.5}, {"AMZN", 0.5}},
	"ai":                      {{"NVDA", 0.9}, {"MSFT", 0.8}, {"GOOGL", 0.8}, {"META", 0.6}, {"AMD", 0.5}, {"AMZN", 0.5}},
	"machine learning":        {{"NVDA", 0.85}, {"MSFT", 0.7}, {"GOOGL", 0.75}, {"META", 0.5}, {"AMZN", 0.5}},
	"large language model":    {{"NVDA", 0.8}, {"MSFT", 0.8}, {"GOOGL", 0.8}, {"META", 0.7}},
	"chatbot":                 {{"MSFT", 0.7}, {"GOOGL", 0.7}, {"META", 0.5}},
	"generative ai":           {{"NVDA", 0.9}, {"MSFT", 0.8}, {"GOOGL", 0.8}, {"META", 0.6}},

	// cloud computing
	"cloud computing": {{"AMZN", 0.9}, {"MSFT", 0.9}, {"GOOGL", 0.8}},
	"cloud":           {{"AMZN", 0.7}, {"MSFT", 0.7}, {"GOOGL", 0.6}},
	"saas":            {{"MSFT", 0.7}, {"ADBE", 0.7}, {"GOOGL", 0.5}},

	// electric vehicles
	"electric vehicle":   {{"TSLA", 1.0}},
	"electric vehicles":  {{"TSLA", 1.0}},
	"ev":                 {{"TSLA", 0.9}},
	"evs":                {{"TSLA", 0.9}},
	"battery":            {{"TSLA", 0.7}},
	"charging station":   {{"TSLA", 0.8}},
	"autonomous driving": {{"TSLA", 0.8}, {"GOOGL", 0.5}},
	"self-driving":       {{"TSLA", 0.8}, {"GOOGL", 0.5}},

	// social media & advertising
	"social media":        {{"META", 0.9}, {"GOOGL", 0.5}},
	"digital advertising": {{"META", 0.8}, {"GOOGL", 0.85}},
	"online advertising":  {{"META", 0.8}, {"GOOGL", 0.85}},
	"ad revenue":          {{"META", 0.85}, {"GOOGL", 0.85}},

	// streaming & entertainment
	"streaming":   {{"NFLX", 0.9}, {"DIS", 0.7}, {"AMZN", 0.4}, {"CMCSA", 0.4}},
	"box office":  {{"DIS", 0.7}, {"CMCSA", 0.5}},
	"subscriber":  {{"NFLX", 0.8}, {"DIS", 0.5}, {"TMUS", 0.4}},
	"subscribers": {{"NFLX", 0.8}, {"DIS", 0.5}, {"TMUS", 0.4}},

	// e-commerce & retail
	"e-commerce":        {{"AMZN", 0.9}, {"WMT", 0.5}, {"COST", 0.3}},
	"ecommerce":         {{"AMZN", 0.9}, {"WMT", 0.5}, {"COST", 0.3}},
	"online shopping":   {{"AMZN", 0.85}, {"WMT", 0.4}},
	"retail":            {{"WMT", 0.7}, {"COST", 0.6}, {"HD", 0.5}, {"NKE", 0.4}, {"MCD", 0.3}},
	"consumer spending": {{"WMT", 0.6}, {"COST", 0.5}, {"HD", 0.5}, {"MCD", 0.4}, {"NKE", 0.4}, {"PG", 0.4}},
	"black friday":      {{"AMZN", 0.7}, {"WMT", 0.7}, {"COST", 0.5}, {"HD", 0.5}},

	// payments & fintech
	"payment":         {{"V", 0.8}, {"MA", 0.8}, {"PYPL", 0.7}},
	"payments":        {{"V", 0.8}, {"MA", 0.8}, {"PYPL", 0.7}},
	"fintech":         {{"PYPL", 0.8}, {"V", 0.6}, {"MA", 0.6}},
	"credit card":     {{"V", 0.8}, {"MA", 0.8}, {"JPM", 0.5}, {"BAC", 0.4}},
	"digital payment": {{"V", 0.7}, {"MA", 0.7}, {"PYPL", 0.8}},

	// banking & finance
	"banking":         {{"JPM", 0.9}, {"BAC", 0.85}},
	"bank":            {{"JPM", 0.7}, {"BAC", 0.7}},
	"interest rate":   {{"JPM", 0.7}, {"BAC", 0.7}, {"V", 0.3}, {"MA", 0.3}},
	"interest rates":  {{"JPM", 0.7}, {"BAC", 0.7}, {"V", 0.3}, {"MA", 0.3}},
	"federal reserve": {{"JPM", 0.6}, {"BAC", 0.6}},
	"fed":             {{"JPM", 0.5}, {"BAC", 0.5}},
	"mortgage":        {{"JPM", 0.6}, {"BAC", 0.6}},

	// oil & energy
	"oil":         {{"XOM", 0.9}, {"CVX", 0.9}},
	"crude oil":   {{"XOM", 0.95}, {"CVX", 0.95}},
	"crude":       {{"XOM", 0.85}, {"CVX", 0.85}},
	"natural gas": {{"XOM", 0.7}, {"CVX", 0.7}},
	"petroleum":   {{"XOM", 0.85}, {"CVX", 0.85}},
	"opec":        {{"XOM", 0.8}, {"CVX", 0.8}},
	"energy":      {{"XOM", 0.6}, {"CVX", 0.6}},
	"oil price":   {{"XOM", 0.9}, {"CVX", 0.9}},
	"gas price":   {{"XOM", 0.6}, {"CVX", 0.6}},
	"drilling":    {{"XOM", 0.7}, {"CVX", 0.7}},
	"refinery":    {{"XOM", 0.7}, {"CVX", 0.7}},

	// pharma & healthcare
	"pharmaceutical":   {{"PFE", 0.8}, {"MRK", 0.8}, {"JNJ", 0.7}, {"ABT", 0.6}},
	"pharma":           {{"PFE", 0.8}, {"MRK", 0.8}, {"JNJ", 0.7}, {"ABT", 0.6}},
	"drug":             {{"PFE", 0.7}, {"MRK", 0.7}, {"JNJ", 0.6}},
	"fda":              {{"PFE", 0.7}, {"MRK", 0.7}, {"JNJ", 0.6}, {"ABT", 0.5}},
	"fda approval":     {{"PFE", 0.8}, {"MRK", 0.8}, {"JNJ", 0.7}, {"ABT", 0.6}},
	"vaccine":          {{"PFE", 0.9}, {"MRK", 0.6}, {"JNJ", 0.7}},
	"clinical trial":   {{"PFE", 0.7}, {"MRK", 0.7}, {"JNJ", 0.6}, {"ABT", 0.5}},
	"healthcare":       {{"UNH", 0.8}, {"JNJ", 0.6}, {"PFE", 0.5}, {"MRK", 0.5}, {"ABT", 0.6}},
	"health insurance": {{"UNH", 0.9}},
	"medical device":   {{"ABT", 0.8}, {"JNJ", 0.6}},

	// telecom
	"5g":        {{"TMUS", 0.7}, {"VZ", 0.7}, {"T", 0.7}, {"QCOM", 0.6}},
	"telecom":   {{"VZ", 0.7}, {"T", 0.7}, {"TMUS", 0.7}, {"CSCO", 0.4}},
	"wireless":  {{"TMUS", 0.7}, {"VZ", 0.7}, {"T", 0.7}},
	"broadband": {{"CMCSA", 0.7}, {"VZ", 0.6}, {"T", 0.6}},
	"network":   {{"CSCO", 0.6}, {"VZ", 0.4}, {"T", 0.4}},

	// consumer packaged goods
	"consumer goods":   {{"PG", 0.7}, {"KO", 0.5}, {"PEP", 0.5}},
	"beverage":         {{"KO", 0.8}, {"PEP", 0.8}},
	"beverages":        {{"KO", 0.8}, {"PEP", 0.8}},
	"soft drink":       {{"KO", 0.8}, {"PEP", 0.7}},
	"snack":            {{"PEP", 0.7}},
	"fast food":        {{"MCD", 0.9}},
	"restaurant":       {{"MCD", 0.7}},
	"sportswear":       {{"NKE", 0.9}},
	"athletic":         {{"NKE", 0.7}},
	"sneaker":          {{"NKE", 0.8}},
	"home improvement": {{"HD", 0.9}},
	"housing":          {{"HD", 0.6}},

	// cybersecurity
	"cybersecurity": {{"CSCO", 0.6}, {"MSFT", 0.4}},
	"data breach":   {{"CSCO", 0.4}},
	"hack":          {{"CSCO", 0.3}},

	// trade war / geopolitics
	"trade war":    {{"AAPL", 0.5}, {"NVDA", 0.5}, {"AMD", 0.4}, {"INTC", 0.4}, {"AVGO", 0.4}},
	"china":        {{"AAPL", 0.4}, {"NVDA", 0.5}, {"INTC", 0.3}, {"NKE", 0.3}},
	"supply chain": {{"AAPL", 0.5}, {"NVDA", 0.4}, {"AMD", 0.3}, {"WMT", 0.3}},

	// rideshare / mobility / robotaxi
	"rideshare":           {{"TSLA", 0.4}},
	"ride-hailing":        {{"TSLA", 0.4}},
	"ride hailing":        {{"TSLA", 0.4}},
	"robotaxi":            {{"TSLA", 0.8}, {"GOOGL", 0.7}},
	"robo taxi":           {{"TSLA", 0.8}, {"GOOGL", 0.7}},
	"robo-taxi":           {{"TSLA", 0.8}, {"GOOGL", 0.7}},
	"autonomous vehicle":  {{"TSLA", 0.85}, {"GOOGL", 0.7}},
	"autonomous vehicles": {{"TSLA", 0.85}, {"GOOGL", 0.7}},
	"driverless":          {{"TSLA", 0.8}, {"GOOGL", 0.75}},
	"food delivery":       {{"AMZN", 0.3}},
	"gig economy":         {{"PYPL", 0.3}},

	// aerospace / defense
	"defense":          {{"INTC", 0.3}},
	"defense contract": {{"INTC", 0.3}},
	"military":         {{"INTC", 0.3}},
	"aerospace":        {{"INTC", 0.2}},
	"aircraft":         {{"INTC", 0.2}},

	// cryptocurrency
	"cryptocurrency": {{"PYPL", 0.3}},
	"crypto":         {{"PYPL", 0.3}},
	"bitcoin":        {{"PYPL", 0.3}},
	"blockchain":     {{"NVDA", 0.3}},

	// travel / hospitality
	"vacation rental": {{"AMZN", 0.2}},
	"tourism":         {{"DIS", 0.4}},

	// ev expanded
	"electric truck":  {{"TSLA", 0.6}},
	"ev startup":      {{"TSLA", 0.4}},
	"luxury ev":       {{"TSLA", 0.5}},
	"electric pickup": {{"TSLA", 0.4}},

	// construction / industrial
	"construction":    {{"HD", 0.4}},
	"heavy equipment": {{"HD", 0.3}},
	"agriculture":     {{"COST", 0.2}},
	"infrastructure":  {{"HD", 0.3}},

	// investment banking
	"investment bank":    {{"JPM", 0.7}},
	"investment banking": {{"JPM", 0.7}},
	"wall street":        {{"JPM", 0.5}},
	"wealth management":  {{"JPM", 0.4}},

	// online gaming / betting
	"sports betting":     {{"DIS", 0.2}},
	"online gaming":      {{"MSFT", 0.4}, {"NVDA", 0.4}},
	"video conferencing": {{"MSFT", 0.5}, {"GOOGL", 0.4}},
	"remote work":        {{"MSFT", 0.5}},
}
