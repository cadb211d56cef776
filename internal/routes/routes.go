package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/viniciusbrks/cadastro-clientes/internal/audit"
	"github.com/viniciusbrks/cadastro-clientes/internal/cache"
	"github.com/viniciusbrks/cadastro-clientes/internal/config"
	"github.com/viniciusbrks/cadastro-clientes/internal/handlers"
	infraRepo "github.com/viniciusbrks/cadastro-clientes/internal/infra/repository"
	"github.com/viniciusbrks/cadastro-clientes/internal/middleware"
	ucCliente "github.com/viniciusbrks/cadastro-clientes/internal/usecase/cliente"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clienteRepo := infraRepo.NewClienteGormRepository(db)
	clientesCache := cache.NewClientesCache(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — CLIENTES
	// ======================================================
	listClientesUC := ucCliente.NewListClientes(clienteRepo, clientesCache)
	getClienteUC := ucCliente.NewGetCliente(clienteRepo)

	createClienteUC := ucCliente.NewCreateCliente(
		clienteRepo,
		clientesCache,
		auditDispatcher,
	)

	updateClienteUC := ucCliente.NewUpdateCliente(
		clienteRepo,
		clientesCache,
		auditDispatcher,
	)

	deleteClienteUC := ucCliente.NewDeleteCliente(
		clienteRepo,
		clientesCache,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clienteHandler := handlers.NewClienteHandler(
		listClientesUC,
		getClienteUC,
		createClienteUC,
		updateClienteUC,
		deleteClienteUC,
	)

	authHandler := handlers.NewAuthHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 CRUD PÚBLICO (contrato do app)
	// ======================================================
	r.GET("/", clienteHandler.List)

	clientes := r.Group("/clientes")
	{
		clientes.GET("/:id", clienteHandler.Get)
		clientes.POST("", clienteHandler.Create)
		clientes.PUT("/:id", clienteHandler.Update)
		clientes.DELETE("/:id", clienteHandler.Delete)
	}

	// ======================================================
	// 🔐 API ADMINISTRATIVA
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
