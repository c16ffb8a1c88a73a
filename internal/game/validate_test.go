package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/prefs"
)

func TestValidate(t *testing.T) {
	base := func(players, impostors int) Config {
		p := prefs.Defaults(nil)
		p.PlayerCount = players
		p.ImpostorCount = impostors
		return Config{Prefs: p}
	}
	custom := func(majority, minority string) Config {
		c := base(4, 1)
		c.UseCustomWords = true
		c.CustomMajority = majority
		c.CustomMinority = minority
		return c
	}

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", base(4, 1), nil},
		{"too few players", base(2, 1), ErrTooFewPlayers},
		{"no impostors", base(4, 0), ErrTooFewImpostors},
		{"all impostors", base(4, 4), ErrTooManyImpostors},
		{"custom words", custom("Lion", "Tiger"), nil},
		{"custom word missing", custom("Lion", "   "), ErrCustomEmpty},
		{"custom words equal ignoring case", custom(" Lion", "lion "), ErrCustomSame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
