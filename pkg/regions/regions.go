package regions

// Simple package containing the platform and routing lists.
// Separated from the fetchers to avoid import cycles.
type (
	// Routing region used by the match-v5 and account-v1 endpoints.
	Routing string
	// Platform region used by the summoner, league and spectator endpoints.
	Platform string
)

const (
	Americas Routing = "americas"
	Europe   Routing = "europe"
	Asia     Routing = "asia"
)

// Routing region per platform.
var routingByPlatform = map[Platform]Routing{
	"na1":  Americas,
	"br1":  Americas,
	"la1":  Americas,
	"la2":  Americas,
	"oc1":  Americas,
	"euw1": Europe,
	"eun1": Europe,
	"tr1":  Europe,
	"ru":   Europe,
	"kr":   Asia,
	"jp1":  Asia,
}

// ScanOrder is the fixed order used when searching which platform a
// player account belongs to.
var ScanOrder = []Platform{
	"na1", "euw1", "eun1", "kr", "br1", "la1", "la2", "oc1", "tr1", "ru", "jp1",
}

// RoutingForPlatform returns the regional routing for a given platform.
// Unknown platforms fall back to americas, matching the broadest coverage.
func RoutingForPlatform(platform string) Routing {
	if routing, exists := routingByPlatform[Platform(platform)]; exists {
		return routing
	}
	return Americas
}

// IsValidPlatform reports whether the given platform is a known region.
func IsValidPlatform(platform string) bool {
	_, exists := routingByPlatform[Platform(platform)]
	return exists
}
