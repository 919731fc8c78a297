package service

// qbAgeEstimates holds 2025-season ages for starting QBs. The window
// engine falls back to its default age for anyone not listed.
var qbAgeEstimates = map[string]int{
	"jayden-daniels":      24,
	"bo-nix":              25,
	"caleb-williams":      23,
	"drake-maye":          22,
	"brock-purdy":         25,
	"jalen-hurts":         26,
	"jordan-love":         26,
	"cj-stroud":           23,
	"bryce-young":         24,
	"patrick-mahomes":     29,
	"josh-allen":          29,
	"lamar-jackson":       28,
	"joe-burrow":          28,
	"justin-herbert":      27,
	"jared-goff":          30,
	"dak-prescott":        31,
	"matthew-stafford":    37,
	"aaron-rodgers":       41,
	"russell-wilson":      36,
	"kirk-cousins":        36,
	"derek-carr":          34,
	"trevor-lawrence":     25,
	"tua-tagovailoa":      27,
	"deshaun-watson":      29,
	"kyler-murray":        27,
	"baker-mayfield":      29,
	"geno-smith":          34,
	"anthony-richardson":  22,
	"will-levis":          25,
	"daniel-jones":        27,
	"sam-darnold":         28,
	"aidan-oconnell":      26,
}

func qbAge(playerID string) int {
	if age, ok := qbAgeEstimates[playerID]; ok {
		return age
	}
	return 0
}
