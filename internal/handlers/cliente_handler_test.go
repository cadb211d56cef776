package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/httperr"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
	ucCliente "github.com/viniciusbrks/cadastro-clientes/internal/usecase/cliente"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	mu       sync.Mutex
	seq      uint
	clientes map[uint]models.Cliente

	failAll bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clientes: map[uint]models.Cliente{}}
}

var errStorage = errors.New("storage down")

func (r *fakeRepo) List(ctx context.Context) ([]models.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return nil, errStorage
	}

	out := make([]models.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return nil, errStorage
	}

	c, ok := r.clientes[id]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeClienteNaoEncontrado)
	}
	return &c, nil
}

func (r *fakeRepo) Create(ctx context.Context, c *models.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return errStorage
	}

	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = *c
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, c *models.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return errStorage
	}

	r.clientes[c.ID] = *c
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return false, errStorage
	}

	if _, ok := r.clientes[id]; !ok {
		return false, nil
	}
	delete(r.clientes, id)
	return true, nil
}

// ======================================================
// SETUP
// ======================================================

func newTestRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewClienteHandler(
		ucCliente.NewListClientes(repo, nil),
		ucCliente.NewGetCliente(repo),
		ucCliente.NewCreateCliente(repo, nil, nil),
		ucCliente.NewUpdateCliente(repo, nil, nil),
		ucCliente.NewDeleteCliente(repo, nil, nil),
	)

	r := gin.New()
	r.GET("/", h.List)
	r.GET("/clientes/:id", h.Get)
	r.POST("/clientes", h.Create)
	r.PUT("/clientes/:id", h.Update)
	r.DELETE("/clientes/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// TESTS
// ======================================================

func TestCreateThenList(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	w := doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Ana Silva","Idade":30,"UF":"SP"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Cliente criado com sucesso"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var clientes []models.Cliente
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clientes))
	require.Len(t, clientes, 1)
	assert.Equal(t, uint(1), clientes[0].ID)
	assert.Equal(t, "Ana Silva", clientes[0].Nome)
	assert.Equal(t, 30, clientes[0].Idade)
	assert.Equal(t, "SP", clientes[0].UF)
}

func TestCreate_NormalizaUF(t *testing.T) {
	repo := newFakeRepo()
	r := newTestRouter(repo)

	w := doJSON(r, http.MethodPost, "/clientes", `{"Nome":"  Ana  ","Idade":30,"UF":"sp"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	c, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Nome)
	assert.Equal(t, "SP", c.UF)
}

func TestCreate_Validacao(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"sem nome", `{"Nome":"  ","Idade":30,"UF":"SP"}`, "Informe o nome."},
		{"idade negativa", `{"Nome":"Ana","Idade":-1,"UF":"SP"}`, "Idade deve ser um número inteiro entre 0 e 150."},
		{"idade acima", `{"Nome":"Ana","Idade":151,"UF":"SP"}`, "Idade deve ser um número inteiro entre 0 e 150."},
		{"uf curta", `{"Nome":"Ana","Idade":30,"UF":"S"}`, "UF deve ter exatamente 2 letras."},
		{"uf longa", `{"Nome":"Ana","Idade":30,"UF":"SPO"}`, "UF deve ter exatamente 2 letras."},
		{"idade ausente", `{"Nome":"Ana","UF":"SP"}`, "Dados inválidos."},
		{"idade texto", `{"Nome":"Ana","Idade":"abc","UF":"SP"}`, "Dados inválidos."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(newFakeRepo())

			w := doJSON(r, http.MethodPost, "/clientes", tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.wantErr), w.Body.String())
		})
	}
}

func TestCreate_IdadeZeroEhValida(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	w := doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Bebê","Idade":0,"UF":"SP"}`)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGet_OKeNaoEncontrado(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Ana","Idade":30,"UF":"SP"}`)

	w := doJSON(r, http.MethodGet, "/clientes/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c models.Cliente
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, "Ana", c.Nome)

	w = doJSON(r, http.MethodGet, "/clientes/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Cliente não encontrado."}`, w.Body.String())
}

func TestUpdate_Idempotente(t *testing.T) {
	repo := newFakeRepo()
	r := newTestRouter(repo)

	doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Ana","Idade":30,"UF":"SP"}`)

	body := `{"Nome":"Ana Souza","Idade":31,"UF":"RJ"}`

	w := doJSON(r, http.MethodPut, "/clientes/1", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Cliente atualizado com sucesso"}`, w.Body.String())

	first, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	w = doJSON(r, http.MethodPut, "/clientes/1", body)
	require.Equal(t, http.StatusOK, w.Code)

	second, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Ana Souza", second.Nome)
	assert.Equal(t, 31, second.Idade)
	assert.Equal(t, "RJ", second.UF)
}

func TestUpdate_NaoEncontrado(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	w := doJSON(r, http.MethodPut, "/clientes/99", `{"Nome":"Ana","Idade":30,"UF":"SP"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_200DepoisRepetido404(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Ana","Idade":30,"UF":"SP"}`)

	w := doJSON(r, http.MethodDelete, "/clientes/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Cliente removido com sucesso"}`, w.Body.String())

	// registro some da listagem
	w = doJSON(r, http.MethodGet, "/", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	// repetir o delete do mesmo id → 404
	w = doJSON(r, http.MethodDelete, "/clientes/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Cliente não encontrado."}`, w.Body.String())
}

func TestFalhaDeStorageVira500(t *testing.T) {
	repo := newFakeRepo()
	r := newTestRouter(repo)

	doJSON(r, http.MethodPost, "/clientes", `{"Nome":"Ana","Idade":30,"UF":"SP"}`)
	repo.failAll = true

	cases := []struct {
		method  string
		path    string
		body    string
		wantErr string
	}{
		{http.MethodGet, "/", "", "Erro ao listar clientes."},
		{http.MethodGet, "/clientes/1", "", "Erro ao buscar cliente."},
		{http.MethodPost, "/clientes", `{"Nome":"Ana","Idade":30,"UF":"SP"}`, "Erro ao criar cliente."},
		{http.MethodPut, "/clientes/1", `{"Nome":"Ana","Idade":30,"UF":"SP"}`, "Erro ao atualizar cliente."},
		{http.MethodDelete, "/clientes/1", "", "Erro ao remover cliente."},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := doJSON(r, tc.method, tc.path, tc.body)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.wantErr), w.Body.String())
		})
	}
}

func TestIDInvalido(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	w := doJSON(r, http.MethodGet, "/clientes/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Identificador inválido."}`, w.Body.String())
}
