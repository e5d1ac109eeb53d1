package usecase

import (
	"context"
	"strings"
	"time"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/internal/domain/repository"
	"bookingbot-service/pkg/logger"
	"bookingbot-service/pkg/metrics"
	"bookingbot-service/pkg/utils"
	"bookingbot-service/templates"
)

// Conversation is the step-indexed intake flow. Each inbound message
// loads the sender's episode, interprets the text against the pending
// step, persists the transition and returns the next prompt. It never
// returns an error to the transport: every failure becomes a
// user-facing reply.
type Conversation struct {
	bookings    repository.BookingRepository
	archive     repository.BookingArchiveRepository
	recommender *Recommender
	ref         *RefStore
	metrics     *metrics.Metrics
	logger      logger.Logger
	minRating   int
	now         func() time.Time
}

// NewConversation wires the intake flow. minRating is the threshold a
// prior stay must meet to be offered for rebooking.
func NewConversation(
	bookings repository.BookingRepository,
	archive repository.BookingArchiveRepository,
	recommender *Recommender,
	ref *RefStore,
	m *metrics.Metrics,
	log logger.Logger,
	minRating int,
) *Conversation {
	return &Conversation{
		bookings:    bookings,
		archive:     archive,
		recommender: recommender,
		ref:         ref,
		metrics:     m,
		logger:      log,
		minRating:   minRating,
		now:         time.Now,
	}
}

// HandleMessage runs one turn of the conversation for a phone number.
func (c *Conversation) HandleMessage(ctx context.Context, phone, text string) string {
	start := time.Now()
	c.metrics.MessagesReceived.Inc()
	defer func() {
		c.metrics.HandleTime.Observe(time.Since(start).Seconds())
		c.metrics.RepliesSent.Inc()
	}()

	msg := strings.TrimSpace(text)

	// Reset keywords win from any step, including mid-episode. A new
	// episode row is inserted; the old one stays behind as history.
	if isResetKeyword(msg) {
		if _, err := c.bookings.Create(ctx, phone); err != nil {
			c.storeFailure("create", phone, err)
			return templates.TryAgain()
		}
		if strings.EqualFold(msg, "restart") {
			return templates.Restarted()
		}
		return templates.Greeting()
	}

	booking, err := c.bookings.FindLatest(ctx, phone)
	if err != nil {
		c.storeFailure("find", phone, err)
		return templates.TryAgain()
	}

	if booking == nil {
		if _, err := c.bookings.Create(ctx, phone); err != nil {
			c.storeFailure("create", phone, err)
			return templates.TryAgain()
		}
		return templates.Greeting()
	}

	if booking.Step.Terminal() {
		return templates.BookAgainHint()
	}

	switch booking.Step {
	case entity.StepName:
		return c.handleName(ctx, booking, msg)
	case entity.StepCity:
		return c.handleCity(ctx, booking, msg)
	case entity.StepCheckinChoice:
		return c.handleCheckinChoice(ctx, booking, msg)
	case entity.StepCheckinDate:
		return c.handleCheckinDate(ctx, booking, msg)
	case entity.StepPrevHotel:
		return c.handlePrevHotel(ctx, booking, msg)
	case entity.StepPickHotel:
		return c.handlePickHotel(ctx, booking, msg)
	case entity.StepCheckout:
		return c.handleCheckout(ctx, booking, msg)
	}

	// A step value this build does not know. Start the episode over
	// rather than answer the same user with an error forever.
	c.logger.Warn("Booking at unknown step, restarting", "phone", phone, "step", int(booking.Step))
	if _, err := c.bookings.Create(ctx, phone); err != nil {
		c.storeFailure("create", phone, err)
		return templates.TryAgain()
	}
	return templates.Greeting()
}

func (c *Conversation) handleName(ctx context.Context, b *entity.Booking, msg string) string {
	if msg == "" {
		return c.reject(entity.StepName, templates.AskName())
	}

	b.Name = utils.TitleCase(msg)
	b.Step = entity.StepCity
	if err := c.persist(ctx, b); err != nil {
		return templates.TryAgain()
	}
	return templates.AskCity(b.Name)
}

func (c *Conversation) handleCity(ctx context.Context, b *entity.Booking, msg string) string {
	if msg == "" {
		return c.reject(entity.StepCity, templates.AskCityAgain())
	}

	b.Location = utils.TitleCase(msg)
	b.Step = entity.StepCheckinChoice
	if err := c.persist(ctx, b); err != nil {
		return templates.TryAgain()
	}
	return templates.CheckinMenu(b.Location)
}

func (c *Conversation) handleCheckinChoice(ctx context.Context, b *entity.Booking, msg string) string {
	switch msg {
	case "1", "2":
		days := 1
		if msg == "2" {
			days = 2
		}
		b.Checkin = utils.FormatDate(utils.DateOnly(c.now()).AddDate(0, 0, days))
		return c.recommendDispatch(ctx, b)
	case "3":
		b.Step = entity.StepCheckinDate
		if err := c.persist(ctx, b); err != nil {
			return templates.TryAgain()
		}
		return templates.AskCheckinDate()
	default:
		return c.reject(entity.StepCheckinChoice, templates.InvalidCheckinChoice())
	}
}

func (c *Conversation) handleCheckinDate(ctx context.Context, b *entity.Booking, msg string) string {
	day, err := utils.ParseDate(msg)
	if err != nil {
		return c.reject(entity.StepCheckinDate, templates.BadDate())
	}
	// Same-day check-in is allowed; anything before today is not.
	if day.Before(utils.DateOnly(c.now())) {
		return c.reject(entity.StepCheckinDate, templates.PastCheckin())
	}

	b.Checkin = utils.FormatDate(day)
	return c.recommendDispatch(ctx, b)
}

// recommendDispatch is the transient recommendation step: it consumes
// no input and resolves immediately into the previous-hotel question, a
// fresh shortlist, or straight to check-out when the city has nothing
// to offer. The offers shown are snapshotted onto the episode so later
// numeric replies resolve against what the user saw.
func (c *Conversation) recommendDispatch(ctx context.Context, b *entity.Booking) string {
	b.Step = entity.StepRecommend

	priceCap := 0
	if emp, ok := c.ref.EmployeeByName(b.Name); ok {
		priceCap = emp.PriceCapPerNight
		if prev := c.recommender.PreviousGoodHotel(emp.ID, b.Location, c.minRating); prev != nil {
			b.Step = entity.StepPrevHotel
			b.Recommendations = []entity.Offer{*prev}
			if err := c.persist(ctx, b); err != nil {
				return templates.TryAgain()
			}
			return templates.PrevHotelPrompt(*prev)
		}
	}

	return c.freshShortlist(ctx, b, priceCap)
}

func (c *Conversation) freshShortlist(ctx context.Context, b *entity.Booking, priceCap int) string {
	offers := c.recommender.RecommendHotels(b.Location, priceCap)
	b.Recommendations = offers

	if len(offers) == 0 {
		b.Step = entity.StepCheckout
		if err := c.persist(ctx, b); err != nil {
			return templates.TryAgain()
		}
		return templates.NoHotels(b.Location)
	}

	b.Step = entity.StepPickHotel
	if err := c.persist(ctx, b); err != nil {
		return templates.TryAgain()
	}
	return templates.Shortlist(b.Location, offers)
}

func (c *Conversation) handlePrevHotel(ctx context.Context, b *entity.Booking, msg string) string {
	if len(b.Recommendations) == 0 {
		// Corrupt snapshot: the question cannot be rendered, so
		// rebuild the shortlist instead of re-asking it forever.
		return c.freshShortlist(ctx, b, c.priceCapFor(b.Name))
	}

	switch msg {
	case "1":
		prev := b.Recommendations[0]
		b.SelectedHotel = prev.Name
		b.SelectedPrice = prev.Price
		b.Step = entity.StepCheckout
		if err := c.persist(ctx, b); err != nil {
			return templates.TryAgain()
		}
		return templates.AskCheckout(prev.Name)
	case "2":
		return c.freshShortlist(ctx, b, c.priceCapFor(b.Name))
	default:
		return c.reject(entity.StepPrevHotel, templates.InvalidPrevChoice())
	}
}

func (c *Conversation) handlePickHotel(ctx context.Context, b *entity.Booking, msg string) string {
	if len(b.Recommendations) == 0 {
		return c.freshShortlist(ctx, b, c.priceCapFor(b.Name))
	}

	n, ok := utils.ParseChoice(msg)
	if !ok || n < 1 || n > len(b.Recommendations) {
		return c.reject(entity.StepPickHotel, templates.InvalidSelection(len(b.Recommendations)))
	}

	offer := b.Recommendations[n-1]
	b.SelectedHotel = offer.Name
	b.SelectedPrice = offer.Price
	b.Step = entity.StepCheckout
	if err := c.persist(ctx, b); err != nil {
		return templates.TryAgain()
	}
	return templates.AskCheckout(offer.Name)
}

func (c *Conversation) handleCheckout(ctx context.Context, b *entity.Booking, msg string) string {
	day, err := utils.ParseDate(msg)
	if err != nil {
		return c.reject(entity.StepCheckout, templates.BadDate())
	}

	checkin, err := utils.ParseDate(b.Checkin)
	if err != nil {
		// Stored check-in is unreadable; re-ask it rather than wedge
		// the episode on a comparison that can never succeed.
		c.logger.Warn("Stored check-in unparsable, re-asking", "phone", b.Phone, "checkin", b.Checkin)
		b.Checkin = ""
		b.Step = entity.StepCheckinChoice
		if err := c.persist(ctx, b); err != nil {
			return templates.TryAgain()
		}
		return templates.CheckinMenu(b.Location)
	}

	if !day.After(checkin) {
		return c.reject(entity.StepCheckout, templates.CheckoutNotAfter(b.Checkin))
	}

	b.Checkout = utils.FormatDate(day)
	b.Step = entity.StepDone
	if err := c.persist(ctx, b); err != nil {
		return templates.TryAgain()
	}
	c.metrics.BookingsCompleted.Inc()

	// Best effort; the confirmation is already persisted.
	if c.archive != nil {
		if err := c.archive.Append(ctx, b); err != nil {
			c.metrics.ErrorsCount.WithLabelValues("archive").Inc()
			c.logger.Error("Failed to archive booking", "phone", b.Phone, "error", err)
		}
	}

	return templates.Confirmation(b)
}

func (c *Conversation) priceCapFor(name string) int {
	if emp, ok := c.ref.EmployeeByName(name); ok {
		return emp.PriceCapPerNight
	}
	return 0
}

func (c *Conversation) reject(step entity.Step, reply string) string {
	c.metrics.ValidationFailures.WithLabelValues(step.String()).Inc()
	return reply
}

func (c *Conversation) persist(ctx context.Context, b *entity.Booking) error {
	if err := c.bookings.Save(ctx, b); err != nil {
		c.storeFailure("save", b.Phone, err)
		return err
	}
	return nil
}

func (c *Conversation) storeFailure(operation, phone string, err error) {
	c.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	c.logger.Error("Booking store operation failed", "operation", operation, "phone", phone, "error", err)
}

func isResetKeyword(msg string) bool {
	switch strings.ToLower(msg) {
	case "hi", "hello", "start", "restart":
		return true
	}
	return false
}
