package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/httperr"
	"github.com/viniciusbrks/cadastro-clientes/internal/httpresp"
	ucCliente "github.com/viniciusbrks/cadastro-clientes/internal/usecase/cliente"
)

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	listUC   *ucCliente.ListClientes
	getUC    *ucCliente.GetCliente
	createUC *ucCliente.CreateCliente
	updateUC *ucCliente.UpdateCliente
	deleteUC *ucCliente.DeleteCliente
}

func NewClienteHandler(
	listUC *ucCliente.ListClientes,
	getUC *ucCliente.GetCliente,
	createUC *ucCliente.CreateCliente,
	updateUC *ucCliente.UpdateCliente,
	deleteUC *ucCliente.DeleteCliente,
) *ClienteHandler {
	return &ClienteHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Idade é ponteiro para que zero não conte como campo ausente.
type ClienteRequest struct {
	Nome  string `json:"Nome" binding:"required"`
	Idade *int   `json:"Idade" binding:"required"`
	UF    string `json:"UF" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func writeValidationError(c *gin.Context, err error) bool {
	switch {
	case httperr.IsBusiness(err, domain.CodeNomeObrigatorio):
		httperr.BadRequest(c, "Informe o nome.")
	case httperr.IsBusiness(err, domain.CodeIdadeInvalida):
		httperr.BadRequest(c, "Idade deve ser um número inteiro entre 0 e 150.")
	case httperr.IsBusiness(err, domain.CodeUFInvalida):
		httperr.BadRequest(c, "UF deve ter exatamente 2 letras.")
	default:
		return false
	}
	return true
}

// ======================================================
// LIST
// ======================================================

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, clientes)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cliente, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeClienteNaoEncontrado) {
			httperr.NotFound(c, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, cliente)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClienteHandler) Create(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), req.Nome, *req.Idade, req.UF)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		httperr.Internal(c, "Erro ao criar cliente.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Cliente criado com sucesso")
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), id, req.Nome, *req.Idade, req.UF)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		if httperr.IsBusiness(err, domain.CodeClienteNaoEncontrado) {
			httperr.NotFound(c, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "Erro ao atualizar cliente.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Cliente atualizado com sucesso")
}

// ======================================================
// DELETE
// ======================================================

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, domain.CodeClienteNaoEncontrado) {
			httperr.NotFound(c, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "Erro ao remover cliente.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Cliente removido com sucesso")
}
