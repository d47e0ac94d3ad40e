package domain

import (
	"errors"
)

var (
	MessageSuccessAgreementStatus = "agreement status retrieved successfully"
	MessageSuccessAgreementAccept = "agreement recorded successfully"

	MessageFailedAgreement = "failed to record agreement"

	ErrAgreementRequired = errors.New("user agreement has not been accepted")
	ErrAgreementDeclined = errors.New("user agreement was declined")
)

type (
	AgreementRequest struct {
		Accept bool `json:"accept"`
	}

	AgreementStatusResponse struct {
		Accepted bool `json:"accepted"`
	}
)
