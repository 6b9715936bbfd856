package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits_RoundsInsteadOfTruncating(t *testing.T) {
	// Les flottants IEEE représentent 19.99*100 comme 1998.999… ; une
	// conversion directe en int64 facturerait un centime de moins que le
	// montant figé de la commande.
	tests := []struct {
		amount float64
		want   int64
	}{
		{19.99, 1999},
		{4.35, 435},
		{1.15, 115},
		{100, 10000},
		{206.47, 20647},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, minorUnits(tt.amount), "montant %v", tt.amount)
	}
}
