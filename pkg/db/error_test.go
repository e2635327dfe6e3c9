package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))

	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(errors.New(`duplicate key value violates unique constraint "ux_facturas_numero_archivo"`)))
	assert.True(t, IsDuplicateKeyErr(errors.New("Error 1062 (23000): Duplicate entry '123-a.pdf' for key 'ux_facturas_numero_archivo'")))
	assert.True(t, IsDuplicateKeyErr(errors.New("constraint failed: UNIQUE constraint failed: Facturas.NumeroFactura, Facturas.ArchivoOrigen (2067)")))
}
