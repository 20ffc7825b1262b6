package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrios/almacenes-api/internal/application/inventory"
	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
	"github.com/jdrios/almacenes-api/internal/infrastructure/memory"
	"github.com/jdrios/almacenes-api/pkg/logger"
)

const (
	testProductCode = int64(1001)
	testRequester   = "usuario-solicitante"
	testApprover    = "usuario-almacenista"
)

func intPtr(v int) *int { return &v }

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// newTestEnv arma el caso de uso sobre el almacén en memoria con un
// producto de catálogo sembrado.
func newTestEnv(t *testing.T) (*inventory.MovementUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(&entity.Product{
		Code:        testProductCode,
		Name:        "Manómetro 0-100 PSI",
		UnitMeasure: "UND",
		MinStock:    qty(5),
	}))
	uc := inventory.NewMovementUseCase(store, store.Movements(), store.Stocks(), store.Products(), logger.Nop())
	return uc, store
}

// seedStock deja existencias en un almacén completando una entrada.
func seedStock(t *testing.T, uc *inventory.MovementUseCase, warehouseID int, quantity int64) {
	t.Helper()
	_, err := uc.Create(context.Background(), inventory.CreateMovementInput{
		Type:           entity.MovementEntry,
		ProductCode:    testProductCode,
		Quantity:       qty(quantity),
		DestinationID:  intPtr(warehouseID),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)
}

func assertStock(t *testing.T, uc *inventory.MovementUseCase, warehouseID int, want int64) {
	t.Helper()
	got, err := uc.GetStock(context.Background(), testProductCode, warehouseID)
	require.NoError(t, err)
	assert.True(t, got.Equal(qty(want)),
		"stock en almacén %d: esperado %d, obtenido %s", warehouseID, want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de una entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EntradaQuedaPendienteSinTocarStock(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(10),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatePending, m.State)
	assert.Equal(t, "ENT-000001", m.Code)
	assert.Nil(t, m.ResponsibleID, "pendiente no tiene responsable")
	assert.Nil(t, m.ApprovedAt)
	assertStock(t, uc, entity.WarehousePrincipal, 0)
}

func TestComplete_EntradaSumaStockEnDestino(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(10),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Complete(ctx, m.ID, testApprover))

	got, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateCompleted, got.State)
	require.NotNil(t, got.ResponsibleID)
	assert.Equal(t, testApprover, *got.ResponsibleID)
	assert.NotNil(t, got.ApprovedAt)
	assertStock(t, uc, entity.WarehousePrincipal, 10)
}

func TestRevert_DeshaceExactamenteElEfecto(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 20)

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementExit,
		ProductCode:    testProductCode,
		Quantity:       qty(7),
		OriginID:       intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)
	assertStock(t, uc, entity.WarehousePrincipal, 13)

	require.NoError(t, uc.RevertToPending(ctx, m.ID))

	got, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatePending, got.State)
	assert.Nil(t, got.ResponsibleID, "revertir limpia el responsable")
	assert.Nil(t, got.ApprovedAt, "revertir limpia la fecha de aprobación")
	assertStock(t, uc, entity.WarehousePrincipal, 20)
}

func TestReject_NoTocaStockYSePuedeReactivar(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(5),
		DestinationID: intPtr(entity.WarehouseInstrumentacion),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Reject(ctx, m.ID, testApprover))

	got, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateRejected, got.State)
	assertStock(t, uc, entity.WarehouseInstrumentacion, 0)

	// R -> P: reactivar un rechazado tampoco toca el stock.
	require.NoError(t, uc.RevertToPending(ctx, m.ID))
	got, err = uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatePending, got.State)
	assertStock(t, uc, entity.WarehouseInstrumentacion, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestTransicionesInvalidas(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	pending, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(1),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)

	completed, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementEntry,
		ProductCode:    testProductCode,
		Quantity:       qty(1),
		DestinationID:  intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)

	// Pendiente no puede revertirse.
	err = uc.RevertToPending(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Completado no puede completarse ni rechazarse de nuevo.
	err = uc.Complete(ctx, completed.ID, testApprover)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	err = uc.Reject(ctx, completed.ID, testApprover)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"C y R nunca se intercambian directamente")

	// Las transiciones fallidas no alteran el stock.
	assertStock(t, uc, entity.WarehousePrincipal, 1)
}

func TestTransiciones_MovimientoInexistente(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Complete(ctx, 999, testApprover), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Reject(ctx, 999, testApprover), domain.ErrNotFound)
	assert.ErrorIs(t, uc.RevertToPending(ctx, 999), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
	_, err := uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suficiencia de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_SalidaSinStockSuficiente(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 3)

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(5),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err, "la solicitud se acepta aunque exceda el stock actual")

	err = uc.Complete(ctx, m.ID, testApprover)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El movimiento sigue pendiente y el stock intacto.
	got, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatePending, got.State)
	assertStock(t, uc, entity.WarehousePrincipal, 3)
}

// Dos salidas pendientes pueden comprometer más stock del disponible: la
// verificación ocurre al completar, en orden de llegada.
func TestComplete_SalidasSobrecomprometidas(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 10)

	first, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(8),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err)
	second, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(8),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Complete(ctx, first.ID, testApprover))
	assertStock(t, uc, entity.WarehousePrincipal, 2)

	err = uc.Complete(ctx, second.ID, testApprover)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"la segunda salida ya no tiene respaldo")
	assertStock(t, uc, entity.WarehousePrincipal, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_TrasladoConservaElTotal(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 12)

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementTransfer,
		ProductCode:   testProductCode,
		Quantity:      qty(4),
		OriginID:      intPtr(entity.WarehousePrincipal),
		DestinationID: intPtr(entity.WarehouseInstrumentacion),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	assert.Equal(t, "TRF-000001", m.Code)

	require.NoError(t, uc.Complete(ctx, m.ID, testApprover))
	assertStock(t, uc, entity.WarehousePrincipal, 8)
	assertStock(t, uc, entity.WarehouseInstrumentacion, 4)

	total, err := uc.GetTotalStock(ctx, testProductCode)
	require.NoError(t, err)
	assert.True(t, total.Equal(qty(12)), "un traslado nunca cambia el total del producto")

	// Revertir el traslado devuelve cada almacén a su punto de partida.
	require.NoError(t, uc.RevertToPending(ctx, m.ID))
	assertStock(t, uc, entity.WarehousePrincipal, 12)
	assertStock(t, uc, entity.WarehouseInstrumentacion, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CompletadoRevierteElLedger(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementEntry,
		ProductCode:    testProductCode,
		Quantity:       qty(6),
		DestinationID:  intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)
	assertStock(t, uc, entity.WarehousePrincipal, 6)

	require.NoError(t, uc.Delete(ctx, m.ID))
	assertStock(t, uc, entity.WarehousePrincipal, 0)

	_, err = uc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_SalidaCompletadaDevuelveAlOrigen(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 7)

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementExit,
		ProductCode:    testProductCode,
		Quantity:       qty(5),
		OriginID:       intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)
	assertStock(t, uc, entity.WarehousePrincipal, 2)

	require.NoError(t, uc.Delete(ctx, m.ID))
	assertStock(t, uc, entity.WarehousePrincipal, 7)

	_, err = uc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_PendienteNoTocaStock(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 5)

	m, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(3),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, m.ID))
	assertStock(t, uc, entity.WarehousePrincipal, 5)
}

// El hueco que deja una eliminación no se reutiliza en la numeración.
func TestDelete_ElCodigoNoSeReutiliza(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(1),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	second, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(1),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	assert.Equal(t, "ENT-000001", first.Code)
	assert.Equal(t, "ENT-000002", second.Code)

	require.NoError(t, uc.Delete(ctx, second.ID))

	third, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   testProductCode,
		Quantity:      qty(1),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	require.NoError(t, err)
	assert.Equal(t, "ENT-000002", third.Code,
		"tras borrar el máximo la secuencia continúa desde el máximo restante")
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad de crear-y-completar
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DirectCompleteFallidoNoDejaRastro(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 2)

	_, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementExit,
		ProductCode:    testProductCode,
		Quantity:       qty(10),
		OriginID:       intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Todo o nada: ni el movimiento ni el código quedaron persistidos.
	list, err := uc.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1, "solo debe existir la entrada de siembra")
	assertStock(t, uc, entity.WarehousePrincipal, 2)

	next, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(1),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err)
	assert.Equal(t, "SAL-000001", next.Code, "el intento fallido no consumió código")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RechazaEntradasInvalidas(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   inventory.CreateMovementInput
	}{
		{"cantidad cero", inventory.CreateMovementInput{
			Type: entity.MovementEntry, ProductCode: testProductCode,
			Quantity: decimal.Zero, DestinationID: intPtr(entity.WarehousePrincipal),
		}},
		{"cantidad negativa", inventory.CreateMovementInput{
			Type: entity.MovementEntry, ProductCode: testProductCode,
			Quantity: qty(-3), DestinationID: intPtr(entity.WarehousePrincipal),
		}},
		{"entrada con origen", inventory.CreateMovementInput{
			Type: entity.MovementEntry, ProductCode: testProductCode, Quantity: qty(1),
			OriginID: intPtr(entity.WarehousePrincipal), DestinationID: intPtr(entity.WarehouseInstrumentacion),
		}},
		{"salida con destino", inventory.CreateMovementInput{
			Type: entity.MovementExit, ProductCode: testProductCode, Quantity: qty(1),
			OriginID: intPtr(entity.WarehousePrincipal), DestinationID: intPtr(entity.WarehouseInstrumentacion),
		}},
		{"salida sin origen", inventory.CreateMovementInput{
			Type: entity.MovementExit, ProductCode: testProductCode, Quantity: qty(1),
		}},
		{"traslado al mismo almacén", inventory.CreateMovementInput{
			Type: entity.MovementTransfer, ProductCode: testProductCode, Quantity: qty(1),
			OriginID: intPtr(entity.WarehousePrincipal), DestinationID: intPtr(entity.WarehousePrincipal),
		}},
		{"traslado hacia almacén virtual", inventory.CreateMovementInput{
			Type: entity.MovementTransfer, ProductCode: testProductCode, Quantity: qty(1),
			OriginID: intPtr(entity.WarehousePrincipal), DestinationID: intPtr(entity.WarehouseCliente),
		}},
		{"entrada hacia almacén inexistente", inventory.CreateMovementInput{
			Type: entity.MovementEntry, ProductCode: testProductCode, Quantity: qty(1),
			DestinationID: intPtr(99),
		}},
		{"tipo desconocido", inventory.CreateMovementInput{
			Type: entity.MovementType("AJU"), ProductCode: testProductCode, Quantity: qty(1),
			DestinationID: intPtr(entity.WarehousePrincipal),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.RequestedBy = testRequester
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc, _ := newTestEnv(t)
	_, err := uc.Create(context.Background(), inventory.CreateMovementInput{
		Type:          entity.MovementEntry,
		ProductCode:   424242,
		Quantity:      qty(1),
		DestinationID: intPtr(entity.WarehousePrincipal),
		RequestedBy:   testRequester,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste a cero ante datos inconsistentes
// ──────────────────────────────────────────────────────────────────────────────

func TestRevert_StockInconsistenteSeAjustaACero(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()

	entry, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementEntry,
		ProductCode:    testProductCode,
		Quantity:       qty(10),
		DestinationID:  intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)

	// Otra salida drena el almacén por debajo de lo que la entrada aportó.
	_, err = uc.Create(ctx, inventory.CreateMovementInput{
		Type:           entity.MovementExit,
		ProductCode:    testProductCode,
		Quantity:       qty(8),
		OriginID:       intPtr(entity.WarehousePrincipal),
		RequestedBy:    testRequester,
		DirectComplete: true,
	})
	require.NoError(t, err)
	assertStock(t, uc, entity.WarehousePrincipal, 2)

	// Revertir la entrada restaría 10 a un almacén con 2: se ajusta a cero.
	require.NoError(t, uc.RevertToPending(ctx, entry.ID))
	assertStock(t, uc, entity.WarehousePrincipal, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorTipoYEstado(t *testing.T) {
	uc, _ := newTestEnv(t)
	ctx := context.Background()
	seedStock(t, uc, entity.WarehousePrincipal, 10)

	_, err := uc.Create(ctx, inventory.CreateMovementInput{
		Type:        entity.MovementExit,
		ProductCode: testProductCode,
		Quantity:    qty(1),
		OriginID:    intPtr(entity.WarehousePrincipal),
		RequestedBy: testRequester,
	})
	require.NoError(t, err)

	exits := entity.MovementExit
	list, err := uc.List(ctx, repository.MovementFilter{Type: &exits})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.MovementExit, list[0].Type)

	pending := entity.StatePending
	list, err = uc.List(ctx, repository.MovementFilter{State: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatePending, list[0].State)

	list, err = uc.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStockByWarehouse_AlmacenVirtualNoExiste(t *testing.T) {
	uc, _ := newTestEnv(t)
	_, err := uc.StockByWarehouse(context.Background(), entity.WarehouseCliente)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el almacén virtual Cliente nunca expone stock")
}

func TestLowStock_DetectaProductosBajoMinimo(t *testing.T) {
	uc, store := newTestEnv(t)
	ctx := context.Background()

	// Segundo producto con mínimo en cero: nunca aparece en el reporte.
	require.NoError(t, store.Products().Create(&entity.Product{
		Code:        2002,
		Name:        "Cable calibre 12",
		UnitMeasure: "MTS",
		MinStock:    decimal.Zero,
	}))

	// testProductCode tiene mínimo 5 y stock 0: está bajo mínimo.
	items, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, testProductCode, items[0].ProductCode)
	assert.True(t, items[0].TotalStock.Equal(decimal.Zero))

	// Al superar el mínimo deja de reportarse.
	seedStock(t, uc, entity.WarehousePrincipal, 9)
	items, err = uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
