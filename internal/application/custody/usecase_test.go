package custody_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/custody"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

const (
	fabricante   = "0xA000000000000000000000000000000000000001"
	distribuidor = "0xB000000000000000000000000000000000000002"
	minorista    = "0xC000000000000000000000000000000000000003"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: implementan los puertos de repositorio y el TxRunner.
// El mutex del store modela la serialización por fila de la BD: cada
// transacción corre con el lock tomado y sus escrituras quedan pendientes
// hasta el commit, así un error deja el store intacto.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	roles    map[string]entity.Role
	nextID   uint64
	products map[uint64]*entity.Product
	mfr      map[uint64]*entity.ManufacturerData
	dist     map[uint64]*entity.DistributorData
	ret      map[uint64]*entity.RetailerData
	history  map[uint64][]*entity.HistoryRecord
}

func newMemStore() *memStore {
	return &memStore{
		roles:    make(map[string]entity.Role),
		products: make(map[uint64]*entity.Product),
		mfr:      make(map[uint64]*entity.ManufacturerData),
		dist:     make(map[uint64]*entity.DistributorData),
		ret:      make(map[uint64]*entity.RetailerData),
		history:  make(map[uint64][]*entity.HistoryRecord),
	}
}

// roleRepo sobre el store.
type memRoleRepo struct{ s *memStore }

func (r *memRoleRepo) Upsert(a *entity.RoleAssignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles[a.Address] = a.Role
	return nil
}

func (r *memRoleRepo) GetRole(address string) (entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.roles[address], nil
}

// memTx implementa los tres puertos dentro de una "transacción": lee el estado
// confirmado y acumula escrituras pendientes que solo se aplican en el commit.
type memTx struct {
	s       *memStore
	pending []func()
}

func (t *memTx) Create(p *entity.Product) error {
	id := t.s.nextID + 1
	p.ID = id
	cp := *p
	t.pending = append(t.pending, func() {
		t.s.nextID = id
		t.s.products[id] = &cp
	})
	return nil
}

func (t *memTx) GetByID(id uint64) (*entity.Product, error) {
	return t.getProduct(id), nil
}

func (t *memTx) GetForUpdate(id uint64) (*entity.Product, error) {
	return t.getProduct(id), nil
}

func (t *memTx) getProduct(id uint64) *entity.Product {
	p, ok := t.s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (t *memTx) UpdateCustody(id uint64, owner string, status entity.Status) error {
	t.pending = append(t.pending, func() {
		p := t.s.products[id]
		p.CurrentOwner = owner
		p.Status = status
	})
	return nil
}

func (t *memTx) List(limit, offset int) ([]*entity.Product, error)                 { return nil, nil }
func (t *memTx) ListByOwner(o string, limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (t *memTx) CreateManufacturerData(d *entity.ManufacturerData) error {
	if _, ok := t.s.mfr[d.ProductID]; ok {
		return domain.ErrInvalidState
	}
	cp := *d
	t.pending = append(t.pending, func() { t.s.mfr[cp.ProductID] = &cp })
	return nil
}

func (t *memTx) CreateDistributorData(d *entity.DistributorData) error {
	if _, ok := t.s.dist[d.ProductID]; ok {
		return domain.ErrInvalidState
	}
	cp := *d
	t.pending = append(t.pending, func() { t.s.dist[cp.ProductID] = &cp })
	return nil
}

func (t *memTx) CreateRetailerData(d *entity.RetailerData) error {
	if _, ok := t.s.ret[d.ProductID]; ok {
		return domain.ErrInvalidState
	}
	cp := *d
	t.pending = append(t.pending, func() { t.s.ret[cp.ProductID] = &cp })
	return nil
}

func (t *memTx) GetManufacturerData(id uint64) (*entity.ManufacturerData, error) { return t.s.mfr[id], nil }
func (t *memTx) GetDistributorData(id uint64) (*entity.DistributorData, error)  { return t.s.dist[id], nil }
func (t *memTx) GetRetailerData(id uint64) (*entity.RetailerData, error)        { return t.s.ret[id], nil }

func (t *memTx) Append(r *entity.HistoryRecord) error {
	cp := *r
	t.pending = append(t.pending, func() {
		t.s.history[cp.ProductID] = append(t.s.history[cp.ProductID], &cp)
	})
	return nil
}

func (t *memTx) ListByProduct(id uint64) ([]*entity.HistoryRecord, error) {
	return t.s.history[id], nil
}

// memTxRunner serializa transacciones sobre el store y aplica las escrituras
// pendientes solo si fn termina sin error.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stageRepo repository.StageDataRepository,
	historyRepo repository.HistoryRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tx := &memTx{s: r.s}
	if err := fn(tx, tx, tx); err != nil {
		return err
	}
	for _, apply := range tx.pending {
		apply()
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*custody.UseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	roleRepo := &memRoleRepo{s: store}
	uc := custody.NewUseCase(&memTxRunner{s: store}, roleRepo)

	now := time.Now().Unix()
	require.NoError(t, roleRepo.Upsert(&entity.RoleAssignment{Address: fabricante, Role: entity.RoleManufacturer, UpdatedAt: now}))
	require.NoError(t, roleRepo.Upsert(&entity.RoleAssignment{Address: distribuidor, Role: entity.RoleDistributor, UpdatedAt: now}))
	require.NoError(t, roleRepo.Upsert(&entity.RoleAssignment{Address: minorista, Role: entity.RoleRetailer, UpdatedAt: now}))
	return uc, store
}

func crearProducto(t *testing.T, uc *custody.UseCase) uint64 {
	t.Helper()
	id, err := uc.CreateProduct(context.Background(), fabricante, dto.CreateProductRequest{
		Name:              "Milk",
		BatchID:           "BATCH-1",
		Quantity:          100,
		Origin:            "Bogotá",
		ManufacturingDate: time.Now().Unix(),
		QualityStandard:   "ISO-22000",
	})
	require.NoError(t, err)
	return id
}

func transferirADistribuidor(uc *custody.UseCase, actor string, id uint64, dist string) error {
	return uc.TransferToDistributor(context.Background(), actor, id, dto.TransferToDistributorRequest{
		Distributor:          dist,
		Temperature:          4,
		Humidity:             60,
		Location:             "Bogotá",
		TransportationMode:   "refrigerated-truck",
		ExpectedDeliveryDate: time.Now().Add(72 * time.Hour).Unix(),
	})
}

func transferirAMinorista(uc *custody.UseCase, actor string, id uint64, ret string) error {
	return uc.TransferToRetailer(context.Background(), actor, id, dto.TransferToRetailerRequest{
		Retailer:          ret,
		StorageCondition:  "refrigerated",
		ExpiryDate:        time.Now().Add(30 * 24 * time.Hour).Unix(),
		VerificationNotes: "sello intacto",
	})
}

// invarianteHistorial verifica len(historial) == estado + 1 para un producto.
func invarianteHistorial(t *testing.T, store *memStore, id uint64) {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	p := store.products[id]
	require.NotNil(t, p)
	assert.Len(t, store.history[id], int(p.Status)+1,
		"el historial debe tener estado+1 entradas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// El fabricante crea el producto: id=1, estado Created, historial de una entrada.
func TestCreateProduct(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)
	assert.Equal(t, uint64(1), id)

	p := store.products[id]
	require.NotNil(t, p)
	assert.Equal(t, "Milk", p.Name)
	assert.Equal(t, "BATCH-1", p.BatchID)
	assert.Equal(t, entity.StatusCreated, p.Status)
	assert.Equal(t, fabricante, p.CurrentOwner)
	assert.Equal(t, fabricante, p.Manufacturer)

	require.Len(t, store.history[id], 1)
	assert.Equal(t, fabricante, store.history[id][0].Actor)
	assert.Equal(t, entity.StatusCreated, store.history[id][0].Status)

	data := store.mfr[id]
	require.NotNil(t, data)
	assert.Equal(t, int64(100), data.Quantity)
	assert.Equal(t, fabricante, data.Manufacturer)
	invarianteHistorial(t, store, id)
}

// Los IDs son secuenciales desde 1, asignados por el ledger.
func TestCreateProduct_IDsSecuenciales(t *testing.T) {
	uc, _ := newEngine(t)
	assert.Equal(t, uint64(1), crearProducto(t, uc))
	assert.Equal(t, uint64(2), crearProducto(t, uc))
	assert.Equal(t, uint64(3), crearProducto(t, uc))
}

// Identidad sin rol fabricante no crea productos y no consume IDs.
func TestCreateProduct_SinRolFalla(t *testing.T) {
	uc, store := newEngine(t)
	_, err := uc.CreateProduct(context.Background(), "0xSinRol", dto.CreateProductRequest{
		Name: "Milk", BatchID: "B", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, store.products)
	assert.Equal(t, uint64(0), store.nextID, "un fallo no debe consumir IDs")

	// Distribuidores y minoristas tampoco crean.
	_, err = uc.CreateProduct(context.Background(), distribuidor, dto.CreateProductRequest{
		Name: "Milk", BatchID: "B", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Flujo completo: Created → InTransit → Delivered con custodio, historial y
// datos de etapa correctos en cada paso. El historial registra al iniciador.
func TestFlujoCompleto(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)

	require.NoError(t, transferirADistribuidor(uc, fabricante, id, distribuidor))
	p := store.products[id]
	assert.Equal(t, entity.StatusInTransit, p.Status)
	assert.Equal(t, distribuidor, p.CurrentOwner)
	require.Len(t, store.history[id], 2)
	assert.Equal(t, fabricante, store.history[id][1].Actor, "el historial registra al iniciador, no al receptor")
	assert.Equal(t, entity.StatusInTransit, store.history[id][1].Status)
	require.NotNil(t, store.dist[id])
	assert.Equal(t, int32(4), store.dist[id].Temperature)
	invarianteHistorial(t, store, id)

	require.NoError(t, transferirAMinorista(uc, distribuidor, id, minorista))
	p = store.products[id]
	assert.Equal(t, entity.StatusDelivered, p.Status)
	assert.Equal(t, minorista, p.CurrentOwner)
	require.Len(t, store.history[id], 3)
	assert.Equal(t, distribuidor, store.history[id][2].Actor)
	require.NotNil(t, store.ret[id])
	assert.Equal(t, minorista, store.ret[id].Retailer)
	invarianteHistorial(t, store, id)
}

// Delivered es terminal: cualquier intento posterior, venga de quien venga,
// falla con InvalidState y no altera nada.
func TestDelivered_EsTerminal(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)
	require.NoError(t, transferirADistribuidor(uc, fabricante, id, distribuidor))
	require.NoError(t, transferirAMinorista(uc, distribuidor, id, minorista))

	// Repetir la última transferencia sobre el producto ya entregado.
	err := transferirAMinorista(uc, distribuidor, id, minorista)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// El fabricante original, el custodio final y una identidad sin rol
	// observan el mismo rechazo: el estado terminal domina sobre rol y custodia.
	err = transferirADistribuidor(uc, fabricante, id, distribuidor)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	err = transferirAMinorista(uc, minorista, id, minorista)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	err = transferirAMinorista(uc, "0xSinRol", id, minorista)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Len(t, store.history[id], 3, "el historial no debe crecer tras un rechazo")
	assert.Equal(t, entity.StatusDelivered, store.products[id].Status)
	assert.Equal(t, minorista, store.products[id].CurrentOwner)
}

// Nominar como distribuidor a una identidad con otro rol falla con
// InvalidRecipientRole y no muta nada.
func TestTransfer_DestinatarioConRolEquivocado(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)

	err := transferirADistribuidor(uc, fabricante, id, minorista)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipientRole)

	p := store.products[id]
	assert.Equal(t, entity.StatusCreated, p.Status)
	assert.Equal(t, fabricante, p.CurrentOwner)
	assert.Len(t, store.history[id], 1)
	assert.Nil(t, store.dist[id])
}

// Un fabricante que no es el custodio del producto no puede transferirlo.
func TestTransfer_FabricanteAjeno(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)

	otro := "0xA000000000000000000000000000000000000009"
	roleRepo := &memRoleRepo{s: store}
	require.NoError(t, roleRepo.Upsert(&entity.RoleAssignment{Address: otro, Role: entity.RoleManufacturer}))

	err := transferirADistribuidor(uc, otro, id, distribuidor)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, fabricante, store.products[id].CurrentOwner)
}

// ID desconocido responde NotFound.
func TestTransfer_ProductoInexistente(t *testing.T) {
	uc, _ := newEngine(t)
	err := transferirADistribuidor(uc, fabricante, 99, distribuidor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos transferencias concurrentes sobre el mismo producto Created: exactamente
// una gana; la perdedora revalida bajo el lock y observa InvalidState o
// Unauthorized. El estado final corresponde al payload de la ganadora.
func TestTransfer_CarreraConcurrente(t *testing.T) {
	uc, store := newEngine(t)
	id := crearProducto(t, uc)

	otroDistribuidor := "0xB000000000000000000000000000000000000009"
	roleRepo := &memRoleRepo{s: store}
	require.NoError(t, roleRepo.Upsert(&entity.RoleAssignment{Address: otroDistribuidor, Role: entity.RoleDistributor}))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, dest := range []string{distribuidor, otroDistribuidor} {
		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			errs <- transferirADistribuidor(uc, fabricante, id, dest)
		}(dest)
	}
	wg.Wait()
	close(errs)

	var oks, fails int
	for err := range errs {
		if err == nil {
			oks++
		} else {
			fails++
			// La perdedora ve el producto ya mutado: según qué precondición
			// choque primero, Unauthorized (ya no es custodio) o InvalidState.
			perdedorValido := errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrUnauthorized)
			assert.True(t, perdedorValido, "error inesperado del perdedor: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una transferencia debe ganar")
	assert.Equal(t, 1, fails)

	p := store.products[id]
	assert.Equal(t, entity.StatusInTransit, p.Status)
	assert.Equal(t, p.CurrentOwner, store.dist[id].Distributor,
		"el custodio final debe corresponder al payload de la ganadora")
	assert.Len(t, store.history[id], 2)
}

// Entradas vacías se rechazan antes de tocar roles o el store.
func TestValidacionDeEntradas(t *testing.T) {
	uc, _ := newEngine(t)

	_, err := uc.CreateProduct(context.Background(), fabricante, dto.CreateProductRequest{Name: "", BatchID: "B", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateProduct(context.Background(), fabricante, dto.CreateProductRequest{Name: "Milk", BatchID: "B", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.TransferToDistributor(context.Background(), fabricante, 1, dto.TransferToDistributorRequest{Distributor: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.TransferToRetailer(context.Background(), "", 1, dto.TransferToRetailerRequest{Retailer: minorista})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
