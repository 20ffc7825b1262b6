package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func TestParseMovementType(t *testing.T) {
	for _, s := range []string{"ENT", "SAL", "TRF"} {
		typ, err := entity.ParseMovementType(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(typ))
		assert.True(t, typ.Valid())
	}
	for _, s := range []string{"", "ent", "AJU", "ENTRADA"} {
		_, err := entity.ParseMovementType(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q debe rechazarse", s)
	}
}

func TestParseMovementState(t *testing.T) {
	for _, s := range []string{"P", "C", "R"} {
		state, err := entity.ParseMovementState(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(state))
	}
	for _, s := range []string{"", "p", "A", "X"} {
		_, err := entity.ParseMovementState(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado %q debe rechazarse", s)
	}
}

func TestMovementValidate(t *testing.T) {
	base := func(typ entity.MovementType) entity.Movement {
		m := entity.Movement{
			Type:        typ,
			ProductCode: 1001,
			Quantity:    decimal.NewFromInt(3),
			State:       entity.StatePending,
		}
		switch typ {
		case entity.MovementEntry:
			m.DestinationID = intPtr(entity.WarehousePrincipal)
		case entity.MovementExit:
			m.OriginID = intPtr(entity.WarehousePrincipal)
		case entity.MovementTransfer:
			m.OriginID = intPtr(entity.WarehousePrincipal)
			m.DestinationID = intPtr(entity.WarehouseInstrumentacion)
		}
		return m
	}

	t.Run("válidos por tipo", func(t *testing.T) {
		for _, typ := range []entity.MovementType{entity.MovementEntry, entity.MovementExit, entity.MovementTransfer} {
			m := base(typ)
			assert.NoError(t, m.Validate(), "movimiento %s base debe ser válido", typ)
		}
	})

	t.Run("cantidad no positiva", func(t *testing.T) {
		m := base(entity.MovementEntry)
		m.Quantity = decimal.Zero
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
		m.Quantity = decimal.NewFromInt(-1)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})

	t.Run("producto requerido", func(t *testing.T) {
		m := base(entity.MovementEntry)
		m.ProductCode = 0
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})

	t.Run("entrada no lleva origen", func(t *testing.T) {
		m := base(entity.MovementEntry)
		m.OriginID = intPtr(entity.WarehousePrincipal)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})

	t.Run("salida no lleva destino", func(t *testing.T) {
		m := base(entity.MovementExit)
		m.DestinationID = intPtr(entity.WarehouseInstrumentacion)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})

	t.Run("traslado requiere extremos distintos", func(t *testing.T) {
		m := base(entity.MovementTransfer)
		m.DestinationID = intPtr(entity.WarehousePrincipal)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})

	t.Run("almacén virtual no participa", func(t *testing.T) {
		m := base(entity.MovementEntry)
		m.DestinationID = intPtr(entity.WarehouseCliente)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)

		m = base(entity.MovementTransfer)
		m.OriginID = intPtr(entity.WarehouseCliente)
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
	})
}

func TestIsStockWarehouse(t *testing.T) {
	assert.True(t, entity.IsStockWarehouse(entity.WarehousePrincipal))
	assert.True(t, entity.IsStockWarehouse(entity.WarehouseInstrumentacion))
	assert.False(t, entity.IsStockWarehouse(entity.WarehouseCliente), "Cliente es virtual")
	assert.False(t, entity.IsStockWarehouse(0))
	assert.False(t, entity.IsStockWarehouse(99))
}

func TestWarehouses_CatalogoFijo(t *testing.T) {
	ws := entity.Warehouses()
	require.Len(t, ws, 3)
	assert.Equal(t, "Principal", ws[0].Name)
	assert.False(t, ws[0].Virtual)
	assert.True(t, ws[2].Virtual, "el tercer almacén es la referencia externa")

	// El catálogo devuelto es una copia: mutarlo no afecta al original.
	ws[0].Name = "Mutado"
	assert.Equal(t, "Principal", entity.Warehouses()[0].Name)
}
