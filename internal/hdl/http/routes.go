package http

import (
	"encoding/json"
	"errors"
	"github.com/google/uuid"
	"github.com/yur1-dev/koka-backend/internal/auth"
	"github.com/yur1-dev/koka-backend/internal/config"
	"github.com/yur1-dev/koka-backend/internal/ctrl"
	"github.com/yur1-dev/koka-backend/internal/dto"
	"github.com/yur1-dev/koka-backend/internal/hdl"
	"github.com/yur1-dev/koka-backend/internal/hdl/http/middleware"
	"github.com/yur1-dev/koka-backend/internal/hdl/http/utils"
	"github.com/yur1-dev/koka-backend/internal/hdl/validation"
	metrics "github.com/yur1-dev/koka-backend/internal/observability/metrics/prometheus"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("/api/auth", h.auth)
	mux.HandleFunc("/api/inventory", middleware.ApplyMiddleware(h.getInventory, h.authMiddleware))
	mux.HandleFunc("/api/inventory/claim", middleware.ApplyMiddleware(h.claimItem, h.authMiddleware))
	mux.HandleFunc("/api/inventory/send", middleware.ApplyMiddleware(h.sendOffchain, h.authMiddleware))
	mux.HandleFunc("/api/marketplace", middleware.ApplyMiddleware(h.getMarketplace, h.authMiddleware))
	mux.HandleFunc("/api/marketplace/list", middleware.ApplyMiddleware(h.createListing, h.authMiddleware))
	mux.HandleFunc("/api/marketplace/buy", middleware.ApplyMiddleware(h.buyListing, h.authMiddleware))
	mux.HandleFunc("/api/marketplace/cancel", middleware.ApplyMiddleware(h.cancelListing, h.authMiddleware))
	mux.HandleFunc("/api/wallet", middleware.ApplyMiddleware(h.setWallet, h.authMiddleware))
	mux.HandleFunc("/api/admin/airdrop", middleware.ApplyMiddleware(h.airdrop, h.authMiddleware, h.adminMiddleware))
}

func uidFromRequest(r *http.Request, op string) (uuid.UUID, error) {
	uidStr, ok := r.Context().Value("uid").(string)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.String("op", op), zap.Any("uid", r.Context().Value("uid")),
		)
		return uuid.Nil, hdl.ErrFailedToGetUUID
	}

	uid, err := uuid.Parse(uidStr)
	if err != nil {
		zap.L().Error(
			hdl.ErrFailedToParseUUID.Error(),
			zap.String("op", op), zap.String("uid", uidStr),
		)
		return uuid.Nil, hdl.ErrFailedToParseUUID
	}

	return uid, nil
}

func (h *Handler) auth(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.auth.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	req := &dto.AuthRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err := validation.AuthReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate auth request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	token, err := h.ctrl.AuthUser(r.Context(), req)
	if err != nil && errors.Is(err, auth.ErrInvalidCredentials) {
		c = http.StatusUnauthorized
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && errors.Is(err, ctrl.ErrAlreadyExists) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, c, token)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.getInventory.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.GetInventory(r.Context(), uid)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, c, res)
}

func (h *Handler) claimItem(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.claimItem.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.ClaimRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.ClaimReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	collectibleID, err := uuid.Parse(req.CollectibleID)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.ClaimItem(r.Context(), uid, collectibleID)
	if err != nil && errors.Is(err, ctrl.ErrAlreadyClaimed) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) sendOffchain(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.sendOffchain.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.SendOffchainRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.SendOffchainReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	collectibleID, err := uuid.Parse(req.CollectibleID)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.SendOffchain(r.Context(), uid, collectibleID, req.RecipientUsername, req.Amount)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && (errors.Is(err, ctrl.ErrSelfTransfer) || errors.Is(err, ctrl.ErrInsufficientQuantity)) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) getMarketplace(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.getMarketplace.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil {
		page = config.DefaultPage
	}

	size, err := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	if err != nil {
		size = config.DefaultSize
	}

	res, err := h.ctrl.GetMarketplace(r.Context(), int(page), int(size))
	if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, c, res)
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.createListing.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.CreateListingRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.CreateListingReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	collectibleID, err := uuid.Parse(req.CollectibleID)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.CreateListing(r.Context(), uid, collectibleID, req.Price, req.Quantity)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && (errors.Is(err, ctrl.ErrInsufficientQuantity) || errors.Is(err, ctrl.ErrDuplicateListing)) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) buyListing(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.buyListing.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.BuyRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.BuyReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.BuyListing(r.Context(), uid, listingID)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && (errors.Is(err, ctrl.ErrListingNotActive) ||
		errors.Is(err, ctrl.ErrSelfPurchase) ||
		errors.Is(err, ctrl.ErrInsufficientQuantity)) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) cancelListing(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.cancelListing.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.CancelRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.CancelReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.CancelListing(r.Context(), uid, listingID)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && errors.Is(err, ctrl.ErrNotOwner) {
		c = http.StatusForbidden
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && errors.Is(err, ctrl.ErrListingNotActive) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) setWallet(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.setWallet.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	uid, err := uidFromRequest(r, op)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.SetWalletRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.SetWalletReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	err = h.ctrl.SetWallet(r.Context(), uid, req.WalletAddress)
	if err != nil && errors.Is(err, ctrl.ErrAlreadyExists) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) airdrop(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "koka.airdrop.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodPost {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, ErrMethodNotAllowed)
		return
	}

	req := &dto.AirdropRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to decode request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err := validation.AirdropReq(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug(
			"failed to validate request",
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, err)
		return
	}

	err := h.ctrl.Airdrop(r.Context(), req.Username, req.Count)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil && errors.Is(err, ctrl.ErrSupplyExhausted) {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}
