package tracker

import "github.com/mauv0809/scoreline/internal/bracket"

// Broadcaster receives every snapshot the tracker persists.
type Broadcaster interface {
	Broadcast(update Update)
}

// Random is the seedable source behind tosses and draws. *rand.Rand satisfies it.
type Random interface {
	bracket.Shuffler
}
