package database

import (
	"api/utils"
	"os"
	"time"
)

const (
	MONGO_TIMEOUT              = 20 * time.Second
	COLLECTION_FUNNELS         = "funnels"
	COLLECTION_FUNNEL_SESSIONS = "funnel_sessions"
	COLLECTION_PROGRAMS        = "programs"
	COLLECTION_ENROLLMENTS     = "enrollments"
	COLLECTION_SQUADS          = "squads"
	COLLECTION_CALLS           = "calls"
	COLLECTION_CHAT_MESSAGES   = "chat_messages"
	COLLECTION_INVOICES        = "invoices"
	COLLECTION_USERS           = "users"
	COLLECTION_CLIENTS         = "clients"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
