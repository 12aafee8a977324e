// Команда admintoken выпускает токен администратора для ручек /admin.
//
//	ADMIN_JWT_SECRET=... admintoken -sub ops -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/logger"
	"github.com/fsdevblog/groph-checkout/internal/transport/api/tokens"
)

const defaultTTL = 24 * time.Hour

func main() {
	l := logger.New(os.Stderr)

	subject := flag.String("sub", "admin", "Token subject")
	ttl := flag.Duration("ttl", defaultTTL, "Token lifetime")
	secret := flag.String("secret", os.Getenv("ADMIN_JWT_SECRET"), "Signing secret, ADMIN_JWT_SECRET by default")
	flag.Parse()

	if *secret == "" {
		l.Fatal("admin jwt secret is not set")
	}

	token, err := tokens.GenerateAdminJWT(*subject, *ttl, []byte(*secret))
	if err != nil {
		l.WithError(err).Fatal("generate admin token")
	}
	fmt.Println(token) //nolint:forbidigo
}
