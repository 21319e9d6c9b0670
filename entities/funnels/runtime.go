package funnels

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FunnelRuntime é a visão de execução de um funil, consumida pelo runtime de
// sessões e pelo front do funil. O coach_id acompanha a definição para a
// concessão de acesso; a rota pública zera o campo antes de responder.
type FunnelRuntime struct {
	ID                 string                 `json:"id"`
	CoachID            int                    `json:"coach_id,omitempty"`
	Name               string                 `json:"name"`
	Slug               string                 `json:"slug,omitempty"`
	Product            *schemas.FunnelProduct `json:"product,omitempty"`
	CompletionRedirect string                 `json:"completion_redirect,omitempty"`
	Steps              []schemas.FunnelStep   `json:"steps"`
}

// LoadRuntime busca a definição do funil para execução. Tenta o cache Redis
// primeiro; sem cache (ou com Redis fora do ar) cai para o MongoDB e
// repovoa a entrada em melhor esforço.
func LoadRuntime(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID) (*FunnelRuntime, error) {
	rdb := database.GetRedis()
	redisKey := database.REDIS_FUNNEL_RUNTIME_PREFIX + id.Hex()

	if rdb != nil {
		if cached, err := rdb.Get(ctx, redisKey).Result(); err == nil {
			runtime := &FunnelRuntime{}
			if err := json.Unmarshal([]byte(cached), runtime); err == nil {
				return runtime, nil
			}
		}
	}

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	funnel := &schemas.Funnel{}
	if err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&funnel); err != nil {
		return nil, err
	}

	steps := funnel.Steps
	if steps == nil {
		steps = []schemas.FunnelStep{}
	}

	runtime := &FunnelRuntime{
		ID:                 funnel.ID.Hex(),
		CoachID:            funnel.CoachID,
		Name:               funnel.Name,
		Slug:               funnel.Slug,
		Product:            funnel.Product,
		CompletionRedirect: funnel.CompletionRedirect,
		Steps:              steps,
	}

	if rdb != nil {
		if payload, err := json.Marshal(runtime); err == nil {
			rdb.Set(ctx, redisKey, payload, database.REDIS_FUNNEL_RUNTIME_TTL)
		}
	}

	return runtime, nil
}

func invalidateRuntimeCache(ctx context.Context, idStr string) {
	rdb := database.GetRedis()
	if rdb == nil {
		return
	}
	rdb.Del(ctx, database.REDIS_FUNNEL_RUNTIME_PREFIX+idStr)
}

// GetRuntime é a rota pública usada pelo front do funil antes de qualquer
// autenticação.
func GetRuntime(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_FUNNEL_ID_FORMAT)
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

	runtime, err := LoadRuntime(ctx, mongoClient, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		return
	}

	public := *runtime
	public.CoachID = 0

	utils.SendResponse(w, http.StatusOK, "", public, 0)
}
