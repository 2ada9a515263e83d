package usecase

import "context"

// DarkModeKey is the single persisted preference key.
const DarkModeKey = "ledger-dark-mode"

// PreferenceUseCase maps the dark-mode preference onto the generic
// string store. Absence of the key means light mode.
type PreferenceUseCase struct {
	store PreferenceStore
}

// NewPreferenceUseCase creates a new PreferenceUseCase.
func NewPreferenceUseCase(store PreferenceStore) *PreferenceUseCase {
	return &PreferenceUseCase{store: store}
}

// DarkMode reports whether dark mode is enabled.
func (uc *PreferenceUseCase) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := uc.store.Get(ctx, DarkModeKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return value == "true", nil
}

// SetDarkMode persists the dark-mode preference.
func (uc *PreferenceUseCase) SetDarkMode(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return uc.store.Set(ctx, DarkModeKey, value)
}
