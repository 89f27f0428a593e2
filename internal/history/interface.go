package history

// Store keeps the append-only list of finalized matches per sport.
type Store interface {
	Append(rec Record) error
	List(sport Sport) ([]Record, error)
	Clear(sport Sport) error
}
