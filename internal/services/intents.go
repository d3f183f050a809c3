package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/dialogflow"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/lookup"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/storage"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/utils"
)

// Intent names the dialogue platform dispatches on
const (
	IntentCaptureUserQuery            = "capture_user_query"
	IntentProvidePhoneNumber          = "provide_phone_number"
	IntentProvideStationName          = "provide_station_name"
	IntentUserConfirmsStationYes      = "user_confirms_station_yes"
	IntentProvidePNR                  = "provide_pnr"
	IntentCaptureComplaintDescription = "capture_complaint_description"
)

// Static fulfillment texts. The upstream expects HTTP 200 with one of these
// even on logical failure; server-side detail goes to the log instead.
const (
	MsgInvalidRequest     = "Error: Invalid request format."
	MsgUnrecognizedIntent = "Error: Unrecognized intent."
	MsgMissingUserQuery   = "Error: Could not find user_query parameter."
	MsgMissingComplaint   = "Error: Could not find complaint_text parameter."
	MsgQueryWriteFailed   = "Error: Could not write to the database."
	MsgComplaintFailed    = "Error: Could not lodge your complaint. Please try again."
	MsgStoreUnavailable   = "Error: Service is temporarily unavailable. Please try again later."
	MsgInvalidPhone       = "That doesn't look like a valid 10-digit mobile number. Please re-enter your phone number."
	MsgInvalidPNR         = "That doesn't look like a valid PNR. Please enter the 10-digit number printed on your ticket."
	MsgPNRNotFound        = "Sorry, we couldn't find a reservation for that PNR. Please re-check the number and try again."
	MsgStationNotFound    = "Sorry, I couldn't find that station. Please re-check the station name or code and try again."
)

// IntentService resolves one conversation turn per call. It holds no
// per-user state; everything a turn needs arrives in the request contexts.
type IntentService struct {
	store    storage.Store
	pnrs     *lookup.PNRStore
	stations *lookup.StationStore
}

// NewIntentService creates a new intent service
func NewIntentService(store storage.Store, pnrs *lookup.PNRStore, stations *lookup.StationStore) *IntentService {
	return &IntentService{
		store:    store,
		pnrs:     pnrs,
		stations: stations,
	}
}

// HandleTurn dispatches a validated turn to its intent handler
func (s *IntentService) HandleTurn(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	switch turn.Intent {
	case IntentCaptureUserQuery:
		return s.handleUserQuery(turn)
	case IntentProvidePhoneNumber:
		return s.handlePhoneNumber(turn)
	case IntentProvideStationName:
		return s.handleStationName(turn)
	case IntentUserConfirmsStationYes:
		return s.handleStationConfirmed(turn)
	case IntentProvidePNR:
		return s.handlePNR(turn)
	case IntentCaptureComplaintDescription:
		return s.handleComplaintDescription(turn)
	default:
		log.Printf("⚠️  Unrecognized intent: %q", turn.Intent)
		return dialogflow.TextResponse(MsgUnrecognizedIntent)
	}
}

// handleUserQuery registers a free-form passenger query
func (s *IntentService) handleUserQuery(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	text := turn.Parameters["user_query"]
	if text == "" {
		return dialogflow.TextResponse(MsgMissingUserQuery)
	}

	query, err := s.store.CreateQuery(text)
	if err != nil {
		log.Printf("❌ Failed to save query: %v", err)
		return dialogflow.TextResponse(MsgQueryWriteFailed)
	}

	return dialogflow.TextResponse(fmt.Sprintf(
		"Thank you. Your query has been registered with ID: Q-%d. We will get back to you shortly.",
		query.ID))
}

// handlePhoneNumber captures a 10-digit phone number from the raw utterance.
// The upstream does not extract this entity reliably, so the digits are
// pulled out of the query text here.
func (s *IntentService) handlePhoneNumber(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	digits := extractDigits(turn.QueryText)
	if len(digits) != 10 {
		// Fail closed: no context, the conversation does not advance
		return dialogflow.TextResponse(MsgInvalidPhone)
	}

	ctx := dialogflow.NewContext(turn.Session, dialogflow.ContextAwaitingLocation,
		map[string]string{"phone_number": digits})

	return &dialogflow.WebhookResponse{
		FulfillmentText: "Thanks, we have noted your number. Where are you facing the problem?",
		OutputContexts:  []dialogflow.Context{ctx},
		Payload:         dialogflow.ChipsPayload("On a Train", "On a Platform"),
	}
}

// handleStationName looks the input up against the station table and asks
// the user to confirm the matched station
func (s *IntentService) handleStationName(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	if !s.stations.Loaded() {
		log.Println("❌ Station lookup requested but station table is not loaded")
		return dialogflow.TextResponse(MsgStoreUnavailable)
	}

	input := strings.Trim(strings.TrimSpace(turn.Parameters["station_input"]), `"'`)
	if input == "" {
		return dialogflow.TextResponse(MsgStationNotFound)
	}

	station, found := s.stations.Find(input)
	if !found {
		// User stays in the same state and may retry
		return dialogflow.TextResponse(MsgStationNotFound)
	}

	ctx := dialogflow.NewContext(turn.Session, dialogflow.ContextAwaitingStationConfirmation,
		map[string]string{"station_confirmed": station.Name})

	return &dialogflow.WebhookResponse{
		FulfillmentText: fmt.Sprintf("Did you mean '%s'?", station.Name),
		OutputContexts:  []dialogflow.Context{ctx},
		Payload:         dialogflow.ChipsPayload("Yes", "No"),
	}
}

// handleStationConfirmed carries the confirmed station forward and asks for
// the complaint text
func (s *IntentService) handleStationConfirmed(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	station := "Unknown"
	if params, found := dialogflow.FindContext(turn.PriorContexts, dialogflow.ContextAwaitingStationConfirmation); found {
		if confirmed := params["station_confirmed"]; confirmed != "" {
			station = confirmed
		}
	}

	ctx := dialogflow.NewContext(turn.Session, dialogflow.ContextAwaitingComplaintDescription,
		map[string]string{"station_confirmed": station})

	return &dialogflow.WebhookResponse{
		FulfillmentText: fmt.Sprintf("Noted: %s. Please describe your complaint in a few words.", station),
		OutputContexts:  []dialogflow.Context{ctx},
	}
}

// handlePNR verifies a reservation and issues a complaint token
func (s *IntentService) handlePNR(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	if !s.pnrs.Loaded() {
		log.Println("❌ PNR lookup requested but PNR table is not loaded")
		return dialogflow.TextResponse(MsgStoreUnavailable)
	}

	value, err := strconv.ParseInt(strings.TrimSpace(turn.Parameters["pnr_number"]), 10, 64)
	if err != nil || value < 0 {
		return dialogflow.TextResponse(MsgInvalidPNR)
	}

	key := fmt.Sprintf("PNR%010d", value)
	record, found := s.pnrs.Get(key)
	if !found {
		// User stays in the same state and may retry
		return dialogflow.TextResponse(MsgPNRNotFound)
	}

	token, err := utils.GenerateComplaintToken(key)
	if err != nil {
		log.Printf("❌ Failed to generate complaint token: %v", err)
		return dialogflow.TextResponse(MsgComplaintFailed)
	}

	ctx := dialogflow.NewContext(turn.Session, dialogflow.ContextAwaitingComplaintDescription,
		map[string]string{"pnr": key, "complaint_token": token})

	return &dialogflow.WebhookResponse{
		FulfillmentText: fmt.Sprintf(
			"PNR verified for Train %s (%s). Your complaint token is %s. Please describe your complaint in a few words.",
			record.TrainNumber, record.TrainName, token),
		OutputContexts: []dialogflow.Context{ctx},
	}
}

// handleComplaintDescription classifies the complaint text, merges in state
// from both conversation branches and lodges the complaint. Terminal turn:
// no contexts are emitted, so the conversation resets.
func (s *IntentService) handleComplaintDescription(turn *dialogflow.TurnRequest) *dialogflow.WebhookResponse {
	text := turn.Parameters["complaint_text"]
	if text == "" {
		return dialogflow.TextResponse(MsgMissingComplaint)
	}

	complaint := &models.Complaint{
		Text:       text,
		Department: ClassifyComplaint(text),
		Status:     models.StatusOpen,
	}

	// The two context types are scanned independently: a complaint may carry
	// a phone number from the location branch alongside a pnr or station.
	if params, found := dialogflow.FindContext(turn.PriorContexts, dialogflow.ContextAwaitingComplaintDescription); found {
		complaint.PNR = params["pnr"]
		complaint.Token = params["complaint_token"]
		complaint.Station = params["station_confirmed"]
	}
	if params, found := dialogflow.FindContext(turn.PriorContexts, dialogflow.ContextAwaitingLocation); found {
		complaint.Phone = params["phone_number"]
	}

	// PNR and station are mutually exclusive; PNR wins
	if complaint.PNR != "" {
		complaint.Station = ""
	} else if complaint.Station != "" {
		complaint.PNR = ""
		complaint.Token = ""
	}

	saved, err := s.store.CreateComplaint(complaint)
	if err != nil {
		log.Printf("❌ Failed to lodge complaint: %v", err)
		return dialogflow.TextResponse(MsgComplaintFailed)
	}

	return dialogflow.TextResponse(fmt.Sprintf(
		"Your complaint has been registered with ID: C-%d and forwarded to %s. We will get back to you shortly.",
		saved.ID, saved.Department))
}

// extractDigits concatenates every decimal digit in the text, in order
func extractDigits(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
