package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
	"courseadmin/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HealthChecker interface {
	Serving() bool
}

type Deps struct {
	Auth     *usecase.AuthUseCase
	Catalog  *usecase.Catalog
	Cascade  *usecase.CascadeUseCase
	Calendar *usecase.CalendarUseCase
	Content  *usecase.ContentUseCase
	Media    *usecase.MediaUseCase
	Audit    *usecase.AuditUseCase

	Limiter     *middleware.RateLimiter
	LoginLimit  int
	LoginWindow time.Duration

	Cookie    middleware.CookieConfig
	Origins   []string
	StaticDir string
	Health    HealthChecker
	Logger    zerolog.Logger
}

var (
	learningFilters = []string{"course_id", "category_id", "subcategory_id"}
	titleSorts      = []string{"created_at", "updated_at", "title_en", "title_ar"}
	nameSorts       = []string{"name_en", "name_ar", "created_at"}
)

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Logger))

	// без списка origin дашборд отдается с того же хоста, CORS не нужен
	if len(d.Origins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = d.Origins
		config.AllowCredentials = true
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
		config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
		config.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After"}
		r.Use(cors.New(config))
	}

	v := NewValidator()
	resp := responder{auth: d.Auth, cookie: d.Cookie, logger: d.Logger}
	requireSession := middleware.RequireSession(d.Auth, d.Cookie, d.Logger)

	r.GET("/healthz", func(c *gin.Context) {
		if d.Health != nil && !d.Health.Serving() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(resp, d.Auth, v)
	auth := r.Group("/auth")
	{
		login := []gin.HandlerFunc{authHandler.Login}
		if d.Limiter != nil {
			login = append([]gin.HandlerFunc{d.Limiter.Limit("login", d.LoginLimit, d.LoginWindow)}, login...)
		}
		auth.POST("/login", login...)
		auth.POST("/logout", requireSession, authHandler.Logout)
		auth.GET("/me", requireSession, authHandler.Me)
	}

	api := r.Group("/api")
	api.Use(requireSession)
	{
		cat := d.Catalog
		NewResourceHandler[domain.Course, domain.CourseInput](resp, cat.Courses, v,
			[]string{"specialty_id", "active"}, append(titleSorts, "price")).Register(api, allOps)
		NewResourceHandler[domain.Lecture, domain.LectureInput](resp, cat.Lectures, v,
			learningFilters, append(titleSorts, "order")).Register(api, allOps)
		NewResourceHandler[domain.Note, domain.NoteInput](resp, cat.Notes, v,
			append(learningFilters, "lecture_id"), titleSorts).Register(api, allOps)
		NewResourceHandler[domain.FlashCard, domain.FlashCardInput](resp, cat.FlashCards, v,
			learningFilters, []string{"created_at", "updated_at"}).Register(api, allOps)
		NewResourceHandler[domain.Question, domain.QuestionInput](resp, cat.Questions, v,
			append(learningFilters, "lecture_id"), []string{"created_at", "updated_at"}).Register(api, allOps)
		NewResourceHandler[domain.User, domain.UserInput](resp, cat.Users, v,
			[]string{"country_id", "role", "active"}, []string{"name", "email", "created_at", "last_login_at"}).Register(api, allOps)
		NewResourceHandler[domain.Country, domain.CountryInput](resp, cat.Countries, v,
			[]string{"active"}, append(nameSorts, "code")).Register(api, allOps)
		NewResourceHandler[domain.Offer, domain.OfferInput](resp, cat.Offers, v,
			[]string{"course_id", "active"}, []string{"created_at", "starts_at", "ends_at", "discount_percent"}).Register(api, allOps)
		NewResourceHandler[domain.Event, domain.EventInput](resp, cat.Events, v,
			[]string{"from", "to", "active"}, []string{"starts_at", "ends_at", "created_at"}).Register(api, allOps)
		NewResourceHandler[domain.Category, domain.CategoryInput](resp, cat.Categories, v,
			[]string{"course_id", "active"}, nameSorts).Register(api, allOps)
		NewResourceHandler[domain.SubCategory, domain.SubCategoryInput](resp, cat.SubCategories, v,
			[]string{"category_id", "active"}, nameSorts).Register(api, allOps)
		NewResourceHandler[domain.Specialty, domain.SpecialtyInput](resp, cat.Specialties, v,
			[]string{"active"}, nameSorts).Register(api, allOps)

		// заявки приходят с публичного сайта, в админке только разбор
		NewResourceHandler[domain.HostCourseRequest, struct{}](resp, cat.HostRequests, v,
			[]string{"status"}, []string{"created_at", "status"}).
			WithStatusBody(func() any { return &domain.HostRequestStatusInput{} }).
			Register(api, Ops{Delete: true, Status: true})

		options := NewOptionsHandler(resp, d.Cascade)
		api.GET("/options/courses", options.Courses)
		api.GET("/options/categories", options.Categories)
		api.GET("/options/subcategories", options.SubCategories)
		api.GET("/options/specialties", options.Specialties)
		api.GET("/options/countries", options.Countries)

		api.GET("/calendar", NewCalendarHandler(resp, d.Calendar).Month)

		content := NewContentHandler(resp, d.Content, v)
		api.GET("/pages/:slug", content.Get)
		api.PUT("/pages/:slug", content.Update)

		api.POST("/media/uploads", NewMediaHandler(resp, d.Media, v).CreateUpload)
		api.GET("/audit", NewAuditHandler(resp, d.Audit).List)
	}

	pages := NewPageHandler(d.StaticDir)
	r.Static("/assets", filepath.Join(d.StaticDir, "assets"))
	r.GET(middleware.LoginPath, middleware.RedirectIfAuthenticated(d.Auth, d.Cookie), pages.Login)
	r.GET("/", requireSession, pages.App)
	r.NoRoute(pages.NotFound, requireSession, pages.App)

	return r
}
