package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	server_config "github.com/debug-create/new-money-pal/internal/config"
	"github.com/debug-create/new-money-pal/internal/session"
)

// Prints a bearer token for local testing, signed with JWT_SECRET.
func main() {
	userFlag := flag.String("user", "", "user UUID, a new one is generated when empty")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	userID := uuid.Must(uuid.NewV4())
	if *userFlag != "" {
		userID, err = uuid.FromString(*userFlag)
		if err != nil {
			logrus.WithError(err).Fatal("uuid.FromString")
			return
		}
	}

	token, err := session.NewVerifier(env.JWTSecret).Sign(userID, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Verifier.Sign")
		return
	}

	logrus.WithField("userID", userID.String()).Info("Signed dev token")
	fmt.Println(token)
}
