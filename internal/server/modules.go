package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/handlers"
	"github.com/demoapps/go-services/internal/attendance"
	"github.com/demoapps/go-services/internal/bookmarks"
	"github.com/demoapps/go-services/internal/cardgame"
	"github.com/demoapps/go-services/internal/dictionary"
	"github.com/demoapps/go-services/internal/expenses"
	"github.com/demoapps/go-services/internal/mousetracker"
	"github.com/demoapps/go-services/internal/typing"
	"github.com/demoapps/go-services/internal/users"
)

// Module is one app that can be mounted on an engine.
type Module struct {
	Name string
	// DefaultDatabase is used when MONGODB_DATABASE is unset and the app
	// runs as its own binary.
	DefaultDatabase string
	Mount           func(ctx context.Context, r gin.IRouter, d *Deps) error
}

var (
	Attendance = Module{Name: "attendance", DefaultDatabase: "attendance-app", Mount: func(_ context.Context, r gin.IRouter, d *Deps) error {
		var repo attendance.Repository = attendance.NewMemoryRepository()
		if d.DB != nil {
			repo = attendance.NewMongoRepository(d.DB)
		}
		attendance.NewHandler(attendance.NewService(repo)).Register(r)
		return nil
	}}

	Bookmarks = Module{Name: "bookmarks", DefaultDatabase: "bookmarks", Mount: func(_ context.Context, r gin.IRouter, d *Deps) error {
		var repo bookmarks.Repository = bookmarks.NewMemoryRepository()
		if d.DB != nil {
			repo = bookmarks.NewMongoRepository(d.DB)
		}
		bookmarks.NewHandler(bookmarks.NewService(repo, d.Objects)).Register(r)
		return nil
	}}

	CardGame = Module{Name: "cardgame", DefaultDatabase: "cardgame", Mount: func(_ context.Context, r gin.IRouter, d *Deps) error {
		var repo cardgame.Repository = cardgame.NewMemoryRepository()
		if d.DB != nil {
			repo = cardgame.NewMongoRepository(d.DB)
		}
		cardgame.NewHandler(cardgame.NewService(repo)).Register(r)
		return nil
	}}

	Dictionary = Module{Name: "dictionary", DefaultDatabase: "dictionary", Mount: func(ctx context.Context, r gin.IRouter, d *Deps) error {
		var repo dictionary.Repository = dictionary.NewMemoryRepository()
		if d.DB != nil {
			if err := dictionary.EnsureIndexes(ctx, d.DB.Collection(dictionary.Collection)); err != nil {
				return err
			}
			repo = dictionary.NewMongoRepository(d.DB)
		}
		dictionary.NewHandler(dictionary.NewService(repo)).Register(r)
		return nil
	}}

	Expenses = Module{Name: "expenses", DefaultDatabase: "expense_tracker", Mount: func(_ context.Context, r gin.IRouter, d *Deps) error {
		var repo expenses.Repository = expenses.NewMemoryRepository()
		if d.DB != nil {
			repo = expenses.NewMongoRepository(d.DB)
		}
		expenses.NewHandler(expenses.NewService(repo)).Register(r)
		return nil
	}}

	MouseTracker = Module{Name: "mousetracker", DefaultDatabase: "mouse_tracker", Mount: func(_ context.Context, r gin.IRouter, d *Deps) error {
		var repo mousetracker.Repository = mousetracker.NewMemoryRepository()
		if d.DB != nil {
			repo = mousetracker.NewMongoRepository(d.DB)
		}
		mousetracker.NewHandler(mousetracker.NewService(repo)).Register(r)
		return nil
	}}

	Typing = Module{Name: "typing", DefaultDatabase: "typing_master", Mount: mountTyping}
)

// All lists every app in mount order.
var All = []Module{Attendance, Bookmarks, CardGame, Dictionary, Expenses, MouseTracker, Typing}

func mountTyping(ctx context.Context, r gin.IRouter, d *Deps) error {
	var (
		userRepo users.UserRepository    = users.NewMemoryUserRepository()
		texts    typing.TextRepository   = typing.NewMemoryTextRepository()
		results  typing.ResultRepository = typing.NewMemoryResultRepository()
	)
	if d.DB != nil {
		mu := users.NewMongoUserRepository(d.DB.Collection("users"))
		if err := mu.EnsureIndexes(ctx); err != nil {
			return err
		}
		mr := typing.NewMongoResultRepository(d.DB)
		if err := mr.EnsureIndexes(ctx); err != nil {
			return err
		}
		userRepo, texts, results = mu, typing.NewMongoTextRepository(d.DB), mr
	}

	api := r.Group("/api")
	handlers.NewAuthHandler(users.NewService(userRepo), d.Tokens).Register(api)
	typing.NewHandler(typing.NewService(texts, results), d.Tokens).Register(r)
	return nil
}
