package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes groups the handlers served by the API
type Routes struct {
	Accounts     *AccountHandler
	Transfers    *TransferHandler
	Transactions *TransactionHandler
	Health       *HealthCheckHandler
}

// Register mounts every endpoint on e
func (r *Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	accounts := api.Group("/accounts")
	accounts.GET("", r.Accounts.ListAccounts)
	accounts.GET("/:accountId", r.Accounts.GetAccount)
	accounts.PUT("/:accountId/balance", r.Accounts.UpdateBalance)

	transfers := api.Group("/transfers")
	transfers.POST("/validate", r.Transfers.ValidateTransfer)
	transfers.POST("/review", r.Transfers.ReviewTransfer)
	transfers.POST("/confirm", r.Transfers.ConfirmTransfer)

	api.GET("/transactions", r.Transactions.ListTransactions)
}
