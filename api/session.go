package api

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const sessionCookieMaxAge = 60 * 60 * 24 * 30

// setSessionCookie attaches the signed session token as an HTTP-only
// cookie. Secure is flipped on in production so local frontends can
// still talk to the API over plain http during development
func setSessionCookie(c *gin.Context, token string) {
	secure := viper.GetBool("host.ssl.enabled") || viper.GetString("app.environment") == "production"
	c.SetCookie("token", token, sessionCookieMaxAge, "/", "", secure, true)
}

// clearSessionCookie logs the client out. The token itself stays valid
// until its window runs out, there is no server-side revocation
func clearSessionCookie(c *gin.Context) {
	secure := viper.GetBool("host.ssl.enabled") || viper.GetString("app.environment") == "production"
	c.SetCookie("token", "", -1, "/", "", secure, true)
}
