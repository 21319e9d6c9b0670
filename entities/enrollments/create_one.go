package enrollments

import (
	"api/entities/notifications"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"encoding/json"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type createEnrollmentRequest struct {
	AccountID   int    `json:"account_id"`
	ProductType string `json:"product_type"`
	ProductID   string `json:"product_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	ProductName string `json:"product_name"`
}

// CreateOne é a matrícula manual feita pelo coach, sem passar por funil.
func CreateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	reqBody := createEnrollmentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.ENROLLMENTS_INVALID_REQUEST_DATA)
		return
	}

	if reqBody.AccountID == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'account_id' é obrigatório", nil, 0)
		return
	}

	if reqBody.ProductType != schemas.PRODUCT_TYPE_PROGRAM && reqBody.ProductType != schemas.PRODUCT_TYPE_SQUAD {
		utils.SendResponse(w, http.StatusBadRequest, "Tipo de produto inválido", nil, 0)
		return
	}

	productID, err := bson.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.ENROLLMENTS_INVALID_REQUEST_DATA)
		return
	}

	created, err := GrantAccess(account.ID, reqBody.AccountID, reqBody.ProductType, productID, bson.ObjectID{})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_ENROLLMENT_TO_MONGODB)
		return
	}

	if !created {
		utils.SendResponse(w, http.StatusOK, "Conta já matriculada neste produto", nil, 0)
		return
	}

	if reqBody.Email != "" {
		go func() {
			err := notifications.SendBranded(reqBody.Email, reqBody.Name, notifications.TEMPLATE_ENROLLMENT_CREATED, map[string]any{
				"product": reqBody.ProductName,
			})
			if err != nil {
				log.Println("[ENROLLMENTS] Falha ao enviar e-mail de matrícula:", err)
			}
		}()
	}

	utils.SendResponse(w, http.StatusCreated, "", nil, 0)
}
