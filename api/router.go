// Package api contains all endpoints available
package api

import (
	"context"
	"fmt"
	"io"
	"time"

	"moodly/pin-api/db"
	"moodly/pin-api/internal/storage"
	"moodly/pin-api/internal/store"
	"moodly/pin-api/middleware"
	"moodly/pin-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

// MediaUploader is the slice of the object store the handlers need
type MediaUploader interface {
	Upload(ctx context.Context, body io.Reader, filename, folder string) (*storage.UploadResult, error)
}

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Users   *store.UserStore
	Follows *store.FollowStore
	Tokens  *security.TokenIssuer
	Hasher  *security.PasswordHasher
	Media   MediaUploader
}

func NewRouter() (*API, error) {
	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	media, err := storage.NewR2()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage, %w", err)
	}

	return newAPI(d, media), nil
}

func newAPI(d *gorm.DB, media MediaUploader) *API {
	a := &API{
		DB:      d,
		Users:   store.NewUserStore(d),
		Follows: store.NewFollowStore(d),
		Tokens:  security.NewTokenIssuer(viper.GetString("jwt.secret")),
		Hasher:  security.NewHasher(),
		Media:   media,
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	a.Router.MaxMultipartMemory = 5 << 20

	auth := middleware.NewAuthMiddleware(a.Tokens)
	smallBody := middleware.BodySizeLimiter(1 << 20)
	uploadBody := middleware.BodySizeLimiter(viper.GetInt64("upload.max_size"))

	// HEAD /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	users := router.Group("/users")
	{
		// POST /users/auth/register	-> Registers a new user and sets the session cookie
		users.POST("/auth/register", smallBody, a.UserRegister)

		// POST /users/auth/login	-> Logs in a user and sets the session cookie
		users.POST("/auth/login", smallBody, a.UserLogin)

		// POST /users/auth/logout	-> Clears the session cookie
		users.POST("/auth/logout", a.UserLogout)

		// GET /users/me		-> Returns the caller's own profile
		users.GET("/me", auth, a.UserMe)

		// PATCH /users/me		-> Updates the caller's profile, optionally with a new avatar
		users.PATCH("/me", auth, uploadBody, a.UserUpdate)

		// POST /users/follow/:username	-> Toggles following a user
		users.POST("/follow/:username", auth, a.UserFollow)

		// GET /users/:username		-> Returns a profile with viewer-relative follow state
		users.GET("/:username", a.UserProfile)
	}

	pins := router.Group("/pins")
	{
		// GET /pins			-> Returns a page of the pin feed, optionally filtered
		pins.GET("", cacheFor(30), a.PinList)

		// GET /pins/:id		-> Returns a single pin with its author preview
		pins.GET("/:id", a.PinFetch)

		// POST /pins			-> Uploads media and creates a new pin
		pins.POST("", auth, uploadBody, a.PinCreate)
	}

	boards := router.Group("/boards")
	{
		// GET /boards			-> Returns the caller's own boards
		boards.GET("", auth, a.BoardFetchMine)

		// GET /boards/:userId		-> Returns a user's boards with pin details
		boards.GET("/:userId", a.BoardFetch)
	}

	comments := router.Group("/comments")
	{
		// GET /comments/:postId	-> Returns the comments of a pin
		comments.GET("/:postId", a.CommentFetch)

		// POST /comments		-> Adds a comment to a pin
		comments.POST("", auth, smallBody, a.CommentCreate)
	}

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
