package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	appmiddleware "fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, isDemo bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.CORSMiddleware)
	r.Use(appmiddleware.DemoModeMiddleware(isDemo))

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/register", handlers.Register(pool))
	r.Post("/api/login", handlers.Login(pool))
	r.Get("/api/demo", handlers.GetDemo(pool))

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.JWTAuthMiddleware)

		r.Get("/api/user", handlers.GetUser(pool))
		r.Put("/api/user", handlers.UpdateUser(pool))
		r.Post("/api/user/change-password", handlers.ChangePassword(pool))

		r.Post("/api/accounts", handlers.CreateAccount(pool))
		r.Get("/api/accounts", handlers.GetAccounts(pool))
		r.Put("/api/accounts/{account_id}", handlers.UpdateAccount(pool))
		r.Delete("/api/accounts/{account_id}", handlers.DeleteAccount(pool))

		r.Get("/api/categories", handlers.GetCategories(pool))
		r.Post("/api/categories", handlers.CreateCategory(pool))
		r.Put("/api/categories/{category_id}", handlers.UpdateCategory(pool))
		r.Delete("/api/categories/{category_id}", handlers.DeleteCategory(pool))

		r.Post("/api/transactions", handlers.CreateTransaction(pool))
		r.Get("/api/transactions", handlers.GetTransactions(pool))
		r.Get("/api/transactions/{transaction_id}", handlers.GetTransaction(pool))
		r.Put("/api/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
		r.Delete("/api/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

		r.Get("/api/budgets", handlers.GetBudgets(pool))
		r.Get("/api/budgets/{budget_id}", handlers.GetBudget(pool))
		r.Post("/api/budgets", handlers.CreateBudget(pool))
		r.Put("/api/budgets/{budget_id}", handlers.UpdateBudget(pool))
		r.Delete("/api/budgets/{budget_id}", handlers.DeleteBudget(pool))

		r.Post("/api/goals", handlers.CreateGoal(pool))
		r.Get("/api/goals", handlers.GetGoals(pool))
		r.Get("/api/goals/{goal_id}", handlers.GetGoal(pool))
		r.Put("/api/goals/{goal_id}", handlers.UpdateGoal(pool))
		r.Delete("/api/goals/{goal_id}", handlers.DeleteGoal(pool))

		r.Post("/api/import", handlers.ImportTransactions(pool))
		r.Put("/api/import/categorize", handlers.CategorizeDescriptions(pool))

		r.Get("/api/dashboard", handlers.GetDashboard(pool))
		r.Get("/api/analytics", handlers.GetAnalytics(pool))
		r.Get("/api/insights", handlers.GetInsights(pool))
	})

	return r
}
