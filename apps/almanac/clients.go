package almanac

import (
	"calendar.nationaldaily.com/apps/almanac/pkg/gemini"
)

type Clients struct {
	Gemini gemini.Client
}
