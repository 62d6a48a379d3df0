package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cafe", Normalize("CAFÉ"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "bebidas frias", Normalize("  Bebidas Frías "))
	assert.Equal(t, "nino", Normalize("NIÑO"))
	assert.Equal(t, "creme brulee", Normalize("Crème Brûlée"))
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("Té Verde")
	assert.Equal(t, once, Normalize(once))
}

func TestColumnPostgres(t *testing.T) {
	expr := Column("products.name", "postgres")
	assert.True(t, strings.HasPrefix(expr, "LOWER(TRANSLATE(products.name,"))
	assert.Contains(t, expr, accentedChars)
	assert.Contains(t, expr, plainChars)
}

func TestColumnReplaceChain(t *testing.T) {
	expr := Column("name", "sqlite")
	assert.True(t, strings.HasPrefix(expr, "LOWER(REPLACE("))
	assert.Contains(t, expr, "'á', 'a'")
	assert.Contains(t, expr, "'Ñ', 'N'")
	// one REPLACE per accented character
	assert.Equal(t, len([]rune(accentedChars)), strings.Count(expr, "REPLACE("))
}

func TestSearchCondition(t *testing.T) {
	cond := SearchCondition([]string{"name", "description"}, "postgres")
	assert.Equal(t, 2, strings.Count(cond, "LIKE ?"))
	assert.Contains(t, cond, " OR ")
	assert.True(t, strings.HasPrefix(cond, "("))
	assert.True(t, strings.HasSuffix(cond, ")"))
}
