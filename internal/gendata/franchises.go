package gendata

import "github.com/okian/capwindow/internal/domain/model"

// franchises is the full league in draft-order-agnostic, alphabetical-by-id
// order. The generator slices a prefix of this table.
var franchises = []model.Team{
	{ID: "ARI", Name: "Cardinals", City: "Arizona", Conference: "NFC", Division: "West", PrimaryColor: "#97233F", SecondaryColor: "#FFB612"},
	{ID: "ATL", Name: "Falcons", City: "Atlanta", Conference: "NFC", Division: "South", PrimaryColor: "#A71930", SecondaryColor: "#000000"},
	{ID: "BAL", Name: "Ravens", City: "Baltimore", Conference: "AFC", Division: "North", PrimaryColor: "#241773", SecondaryColor: "#9E7C0C"},
	{ID: "BUF", Name: "Bills", City: "Buffalo", Conference: "AFC", Division: "East", PrimaryColor: "#00338D", SecondaryColor: "#C60C30"},
	{ID: "CAR", Name: "Panthers", City: "Carolina", Conference: "NFC", Division: "South", PrimaryColor: "#0085CA", SecondaryColor: "#101820"},
	{ID: "CHI", Name: "Bears", City: "Chicago", Conference: "NFC", Division: "North", PrimaryColor: "#0B162A", SecondaryColor: "#C83803"},
	{ID: "CIN", Name: "Bengals", City: "Cincinnati", Conference: "AFC", Division: "North", PrimaryColor: "#FB4F14", SecondaryColor: "#000000"},
	{ID: "CLE", Name: "Browns", City: "Cleveland", Conference: "AFC", Division: "North", PrimaryColor: "#311D00", SecondaryColor: "#FF3C00"},
	{ID: "DAL", Name: "Cowboys", City: "Dallas", Conference: "NFC", Division: "East", PrimaryColor: "#003594", SecondaryColor: "#869397"},
	{ID: "DEN", Name: "Broncos", City: "Denver", Conference: "AFC", Division: "West", PrimaryColor: "#FB4F14", SecondaryColor: "#002244"},
	{ID: "DET", Name: "Lions", City: "Detroit", Conference: "NFC", Division: "North", PrimaryColor: "#0076B6", SecondaryColor: "#B0B7BC"},
	{ID: "GB", Name: "Packers", City: "Green Bay", Conference: "NFC", Division: "North", PrimaryColor: "#203731", SecondaryColor: "#FFB612"},
	{ID: "HOU", Name: "Texans", City: "Houston", Conference: "AFC", Division: "South", PrimaryColor: "#03202F", SecondaryColor: "#A71930"},
	{ID: "IND", Name: "Colts", City: "Indianapolis", Conference: "AFC", Division: "South", PrimaryColor: "#002C5F", SecondaryColor: "#A2AAAD"},
	{ID: "JAX", Name: "Jaguars", City: "Jacksonville", Conference: "AFC", Division: "South", PrimaryColor: "#101820", SecondaryColor: "#D7A22A"},
	{ID: "KC", Name: "Chiefs", City: "Kansas City", Conference: "AFC", Division: "West", PrimaryColor: "#E31837", SecondaryColor: "#FFB81C"},
	{ID: "LAC", Name: "Chargers", City: "Los Angeles", Conference: "AFC", Division: "West", PrimaryColor: "#0080C6", SecondaryColor: "#FFC20E"},
	{ID: "LAR", Name: "Rams", City: "Los Angeles", Conference: "NFC", Division: "West", PrimaryColor: "#003594", SecondaryColor: "#FFA300"},
	{ID: "LV", Name: "Raiders", City: "Las Vegas", Conference: "AFC", Division: "West", PrimaryColor: "#000000", SecondaryColor: "#A5ACAF"},
	{ID: "MIA", Name: "Dolphins", City: "Miami", Conference: "AFC", Division: "East", PrimaryColor: "#008E97", SecondaryColor: "#FC4C02"},
	{ID: "MIN", Name: "Vikings", City: "Minnesota", Conference: "NFC", Division: "North", PrimaryColor: "#4F2683", SecondaryColor: "#FFC62F"},
	{ID: "NE", Name: "Patriots", City: "New England", Conference: "AFC", Division: "East", PrimaryColor: "#002244", SecondaryColor: "#C60C30"},
	{ID: "NO", Name: "Saints", City: "New Orleans", Conference: "NFC", Division: "South", PrimaryColor: "#D3BC8D", SecondaryColor: "#101820"},
	{ID: "NYG", Name: "Giants", City: "New York", Conference: "NFC", Division: "East", PrimaryColor: "#0B2265", SecondaryColor: "#A71930"},
	{ID: "NYJ", Name: "Jets", City: "New York", Conference: "AFC", Division: "East", PrimaryColor: "#125740", SecondaryColor: "#000000"},
	{ID: "PHI", Name: "Eagles", City: "Philadelphia", Conference: "NFC", Division: "East", PrimaryColor: "#004C54", SecondaryColor: "#A5ACAF"},
	{ID: "PIT", Name: "Steelers", City: "Pittsburgh", Conference: "AFC", Division: "North", PrimaryColor: "#FFB612", SecondaryColor: "#101820"},
	{ID: "SEA", Name: "Seahawks", City: "Seattle", Conference: "NFC", Division: "West", PrimaryColor: "#002244", SecondaryColor: "#69BE28"},
	{ID: "SF", Name: "49ers", City: "San Francisco", Conference: "NFC", Division: "West", PrimaryColor: "#AA0000", SecondaryColor: "#B3995D"},
	{ID: "TB", Name: "Buccaneers", City: "Tampa Bay", Conference: "NFC", Division: "South", PrimaryColor: "#D50A0A", SecondaryColor: "#34302B"},
	{ID: "TEN", Name: "Titans", City: "Tennessee", Conference: "AFC", Division: "South", PrimaryColor: "#0C2340", SecondaryColor: "#4B92DB"},
	{ID: "WAS", Name: "Commanders", City: "Washington", Conference: "NFC", Division: "East", PrimaryColor: "#5A1414", SecondaryColor: "#FFB612"},
}

// firstNames and lastNames feed the synthetic player name generator.
var firstNames = []string{
	"Marcus", "Jalen", "Trevor", "Caleb", "Jordan", "Anthony", "Bryce",
	"Desmond", "Tyler", "Malik", "Derek", "Xavier", "Isaiah", "Cameron",
	"Devon", "Rashad", "Trey", "Kenny", "Jaylen", "Drake",
}

var lastNames = []string{
	"Williams", "Johnson", "Harrison", "Mitchell", "Carter", "Robinson",
	"Jefferson", "Brooks", "Coleman", "Hayes", "Patterson", "Sanders",
	"Bennett", "Fields", "Graham", "Holmes", "Porter", "Vaughn",
	"Whitfield", "Sims",
}
