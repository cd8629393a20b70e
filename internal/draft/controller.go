package draft

import (
	"encoding/json"
	"fmt"

	"github.com/datafield/asset-library-backend/internal/entity"
)

// SessionProvider supplies the current-account snapshot and the
// enumerated reference lists the form offers for country and sector.
type SessionProvider interface {
	CurrentAccountPresent() bool
	// SubscribeReady registers fn to run once session state becomes
	// available and returns an unsubscribe handle.
	SubscribeReady(fn func()) (unsubscribe func())
	AvailableCountries() []entity.OptionPair
	AvailableSectors() []entity.OptionPair
}

// CreatedEntity is the dispatcher's view of a freshly created resource.
type CreatedEntity struct {
	UID  string
	Name string
}

// CreateRequest is the single payload the controller emits. Settings is
// an opaque blob from the controller's perspective.
type CreateRequest struct {
	Name      string
	AssetType string
	Settings  json.RawMessage
}

// ActionDispatcher accepts create requests and reports exactly one
// Completed or Failed event per request, asynchronously.
type ActionDispatcher interface {
	CreateResource(req CreateRequest)
	SubscribeCompleted(fn func(CreatedEntity)) (unsubscribe func())
	SubscribeFailed(fn func()) (unsubscribe func())
}

// Sink receives the controller's outward side effects: user-facing
// notifications, navigation requests and closing the hosting modal.
type Sink interface {
	Notify(message string)
	NavigateTo(path string)
	CloseModal()
}

// Controller drives the create-collection workflow: it owns one Draft,
// revalidates it after every edit and runs the idle/pending submission
// lifecycle against an injected dispatcher.
//
// The controller is event-driven and single-threaded. All mutation
// happens in response to discrete calls on one goroutine; dispatcher
// callbacks are expected to be delivered serially.
type Controller struct {
	session    SessionProvider
	dispatcher ActionDispatcher
	sink       Sink

	sessionLoaded bool
	draft         Draft
	errors        ErrorMap
	submission    SubmissionState

	unsubscribes []func()
}

func NewController(session SessionProvider, dispatcher ActionDispatcher, sink Sink) *Controller {
	return &Controller{
		session:    session,
		dispatcher: dispatcher,
		sink:       sink,
		errors:     ErrorMap{},
	}
}

// Init takes the session snapshot and registers the controller's event
// subscriptions. Every subscription handle is retained so Close can
// release them unconditionally.
func (c *Controller) Init() {
	c.sessionLoaded = c.session.CurrentAccountPresent()
	if !c.sessionLoaded {
		unsub := c.session.SubscribeReady(func() {
			c.sessionLoaded = true
		})
		c.unsubscribes = append(c.unsubscribes, unsub)
	}

	c.unsubscribes = append(c.unsubscribes,
		c.dispatcher.SubscribeCompleted(c.handleCompleted),
		c.dispatcher.SubscribeFailed(c.handleFailed),
	)
}

// Close releases every subscription acquired by Init. Safe to call more
// than once; a late dispatcher event after Close is simply not observed.
func (c *Controller) Close() {
	for _, unsub := range c.unsubscribes {
		unsub()
	}
	c.unsubscribes = nil
}

func (c *Controller) SessionLoaded() bool { return c.sessionLoaded }

// Draft returns a copy of the current field values.
func (c *Controller) Draft() Draft { return c.draft }

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() ErrorMap {
	errs := make(ErrorMap, len(c.errors))
	for field, msg := range c.errors {
		errs[field] = msg
	}
	return errs
}

func (c *Controller) Submission() SubmissionState { return c.submission }

func (c *Controller) SetName(name string) {
	c.draft.Name = name
	c.validate()
}

func (c *Controller) SetOrganization(organization string) {
	c.draft.Organization = organization
	c.validate()
}

func (c *Controller) SetCountry(country *entity.OptionPair) {
	c.draft.Country = country
	c.validate()
}

func (c *Controller) SetSector(sector *entity.OptionPair) {
	c.draft.Sector = sector
	c.validate()
}

func (c *Controller) SetTags(tags []string) {
	c.draft.Tags = NormalizeTags(tags)
	c.validate()
}

func (c *Controller) SetDescription(description string) {
	c.draft.Description = description
	c.validate()
}

func (c *Controller) SetPublic(public bool) {
	c.draft.Public = public
	c.validate()
}

// validate recomputes the error map from scratch. Private drafts carry no
// readiness requirements at all.
func (c *Controller) validate() {
	if !c.draft.Public {
		c.errors = ErrorMap{}
		return
	}

	var sector *string
	if c.draft.Sector != nil {
		sector = &c.draft.Sector.Value
	}
	c.errors = PublicReadiness(c.draft.Name, c.draft.Organization, sector)
}

// IsSubmittable reports whether Submit would issue a request right now.
// Cheap enough to recompute on every call.
func (c *Controller) IsSubmittable() bool {
	return c.submission == SubmissionIdle && len(c.errors) == 0
}

// Submit issues one create-resource request. Calling it while a request
// is already pending, or while the draft has validation errors, is a
// no-op; the Pending state is what prevents a second in-flight request.
func (c *Controller) Submit() {
	if !c.IsSubmittable() {
		return
	}

	settings, err := json.Marshal(entity.CollectionSettings{
		Organization: c.draft.Organization,
		Country:      c.draft.Country,
		Sector:       c.draft.Sector,
		Tags:         c.draft.Tags,
		Description:  c.draft.Description,
	})
	if err != nil {
		return
	}

	c.submission = SubmissionPending
	c.dispatcher.CreateResource(CreateRequest{
		Name:      c.draft.Name,
		AssetType: entity.AssetTypeCollection,
		Settings:  settings,
	})
}

// handleCompleted resets the submission state before touching the sink:
// navigation may tear this component down.
func (c *Controller) handleCompleted(created CreatedEntity) {
	c.submission = SubmissionIdle
	c.sink.Notify(fmt.Sprintf("Collection %s created", created.Name))
	c.sink.NavigateTo("/collections/" + created.UID)
	c.sink.CloseModal()
}

// handleFailed returns control to the operator. Field values stay intact
// so the form can be corrected and resubmitted.
func (c *Controller) handleFailed() {
	c.submission = SubmissionIdle
}
