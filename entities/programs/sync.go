package programs

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// AdvanceEnrollmentDay calcula o dia corrente de uma matrícula a partir da
// data de início. Matrícula pausada (ou não ativa) não anda. O dia nunca
// volta e nunca passa de lengthDays; ao alcançá-lo a matrícula é dada como
// concluída. Rodar duas vezes no mesmo dia não muda nada.
func AdvanceEnrollmentDay(enrollment schemas.Enrollment, lengthDays int, now time.Time) (int, string) {
	if enrollment.Paused || enrollment.Status != schemas.ENROLLMENT_STATUS_ACTIVE {
		return enrollment.CurrentDay, enrollment.Status
	}

	if lengthDays <= 0 {
		return enrollment.CurrentDay, enrollment.Status
	}

	elapsedDays := int(now.Sub(enrollment.StartDate).Hours() / 24)
	day := elapsedDays + 1

	if day < enrollment.CurrentDay {
		day = enrollment.CurrentDay
	}

	if day >= lengthDays {
		return lengthDays, schemas.ENROLLMENT_STATUS_COMPLETED
	}

	return day, schemas.ENROLLMENT_STATUS_ACTIVE
}

// Sync avança o dia de todas as matrículas ativas dos programas do coach.
// É disparado manualmente (ou por um cron externo batendo nesta rota).
func Sync(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(database.GetDB())
	programsCollection := db.Collection(database.COLLECTION_PROGRAMS)
	enrollmentsCollection := db.Collection(database.COLLECTION_ENROLLMENTS)

	cursor, err := programsCollection.Find(ctx, bson.D{{Key: "coach_id", Value: account.ID}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROGRAMS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	programs := []schemas.Program{}
	if err := cursor.All(ctx, &programs); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROGRAMS_IN_MONGODB)
		return
	}

	lengthByProgram := map[bson.ObjectID]int{}
	programIDs := bson.A{}
	for _, program := range programs {
		lengthByProgram[program.ID] = program.LengthDays
		programIDs = append(programIDs, program.ID)
	}

	enrollmentFilter := bson.D{
		{Key: "product_type", Value: schemas.PRODUCT_TYPE_PROGRAM},
		{Key: "product_id", Value: bson.D{{Key: "$in", Value: programIDs}}},
		{Key: "status", Value: schemas.ENROLLMENT_STATUS_ACTIVE},
	}

	enrollmentsCursor, err := enrollmentsCollection.Find(ctx, enrollmentFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_ENROLLMENTS_IN_MONGODB)
		return
	}
	defer enrollmentsCursor.Close(ctx)

	enrollments := []schemas.Enrollment{}
	if err := enrollmentsCursor.All(ctx, &enrollments); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_ENROLLMENTS_IN_MONGODB)
		return
	}

	now := time.Now()
	advanced := 0
	completed := 0

	for _, enrollment := range enrollments {
		day, status := AdvanceEnrollmentDay(enrollment, lengthByProgram[enrollment.ProductID], now)
		if day == enrollment.CurrentDay && status == enrollment.Status {
			continue
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "current_day", Value: day},
			{Key: "status", Value: status},
			{Key: "updated_at", Value: now},
		}}}
		_, err := enrollmentsCollection.UpdateOne(ctx, bson.D{{Key: "_id", Value: enrollment.ID}}, update)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_ENROLLMENT_IN_MONGODB)
			return
		}

		advanced++
		if status == schemas.ENROLLMENT_STATUS_COMPLETED {
			completed++
		}
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]any{
		"checked":   len(enrollments),
		"advanced":  advanced,
		"completed": completed,
	}, 0)
}
