package entity

// Almacenes fijos del sistema. El almacén Cliente (3) es virtual:
// solo actúa como referencia externa de salidas y nunca tiene filas de stock.
const (
	WarehousePrincipal       = 1
	WarehouseInstrumentacion = 2
	WarehouseCliente         = 3
)

// Warehouse representa un almacén físico (o el sentinel virtual Cliente/Externo).
type Warehouse struct {
	ID      int
	Name    string
	Virtual bool // true = no almacena stock real
}

var warehouses = []Warehouse{
	{ID: WarehousePrincipal, Name: "Principal"},
	{ID: WarehouseInstrumentacion, Name: "Instrumentación"},
	{ID: WarehouseCliente, Name: "Cliente/Externo", Virtual: true},
}

// Warehouses devuelve el catálogo fijo de almacenes.
func Warehouses() []Warehouse {
	out := make([]Warehouse, len(warehouses))
	copy(out, warehouses)
	return out
}

// IsStockWarehouse indica si el ID corresponde a un almacén que guarda stock real.
func IsStockWarehouse(id int) bool {
	return id == WarehousePrincipal || id == WarehouseInstrumentacion
}
