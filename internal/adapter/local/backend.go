package local

import (
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

var (
	_ store.HabitStore    = (*HabitRepo)(nil)
	_ store.EntryStore    = (*EntryRepo)(nil)
	_ store.SettingsStore = (*SettingsRepo)(nil)
	_ store.TxManager     = (*Store)(nil)
	_ store.Pinger        = (*Store)(nil)
)

// Backend bundles the local store views. closeFn may be nil.
func (s *Store) Backend(closeFn func()) store.Backend {
	if closeFn == nil {
		closeFn = func() {}
	}
	return store.Backend{
		Name:     "local",
		Habits:   s.Habits(),
		Entries:  s.Entries(),
		Settings: s.Settings(),
		Tx:       s,
		Pinger:   s,
		Close:    closeFn,
	}
}
