package handlers

import (
	userRepoPkg "shootflow/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AccountRepo userRepoPkg.AccountRepository

	// Auth endpoints
	LoginHandler           gin.HandlerFunc
	LogoutHandler          gin.HandlerFunc
	RegisterAccountHandler gin.HandlerFunc
	UpdateFCMTokenHandler  gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler   gin.HandlerFunc
	GetServiceHandler     gin.HandlerFunc
	CreateServiceHandler  gin.HandlerFunc
	UpdateServiceHandler  gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc
	ListCategoriesHandler gin.HandlerFunc
	CreateCategoryHandler gin.HandlerFunc
	UpdateCategoryHandler gin.HandlerFunc
	DeleteCategoryHandler gin.HandlerFunc

	// Shoot endpoints
	BookShootHandler       gin.HandlerFunc
	QuoteHandler           gin.HandlerFunc
	GetShootHandler        gin.HandlerFunc
	ListShootsHandler      gin.HandlerFunc
	PatchShootHandler      gin.HandlerFunc
	DeclineShootHandler    gin.HandlerFunc
	UpdateTourLinksHandler gin.HandlerFunc
	AttachMediaHandler     gin.HandlerFunc

	// Photographer endpoints
	ListPhotographersHandler  gin.HandlerFunc
	CandidatesHandler         gin.HandlerFunc
	AssignPhotographerHandler gin.HandlerFunc
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc

	// Invoice endpoints
	PendingInvoicesHandler   gin.HandlerFunc
	MyInvoicesHandler        gin.HandlerFunc
	ApproveInvoiceHandler    gin.HandlerFunc
	RejectInvoiceHandler     gin.HandlerFunc
	PayInvoiceHandler        gin.HandlerFunc
	AggregateInvoicesHandler gin.HandlerFunc

	// Address endpoints
	SearchAddressHandler   gin.HandlerFunc
	AddressDetailsHandler  gin.HandlerFunc
	PropertyMetricsHandler gin.HandlerFunc

	// Storage endpoints
	UploadMediaHandler gin.HandlerFunc
	DownloadURLHandler gin.HandlerFunc
	DeleteMediaHandler gin.HandlerFunc
}
