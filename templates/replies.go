package templates

import (
	"fmt"
	"strings"

	"bookingbot-service/internal/domain/entity"
)

var keycaps = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

// Keycap renders a 1-based menu index as its emoji marker.
func Keycap(n int) string {
	if n >= 1 && n <= len(keycaps) {
		return keycaps[n-1]
	}
	return fmt.Sprintf("%d.", n)
}

// Greeting welcomes a new conversation and asks for the name.
func Greeting() string {
	return "Hi! 👋 I can help you book a hotel stay. May I have your name?"
}

// Restarted confirms an explicit restart and asks for the name.
func Restarted() string {
	return "🔄 Restarted! May I have your name?"
}

// AskName re-asks for the guest name.
func AskName() string {
	return "May I have your name?"
}

// AskCity follows a stored name.
func AskCity(name string) string {
	return fmt.Sprintf("Nice to meet you, %s! Which city are you travelling to?", name)
}

// AskCityAgain re-asks for the city.
func AskCityAgain() string {
	return "Which city are you travelling to?"
}

// CheckinMenu offers the check-in shortcuts.
func CheckinMenu(city string) string {
	return fmt.Sprintf("%s, great choice! When would you like to check in?\n%s Tomorrow\n%s Day after tomorrow\n%s Enter a date (YYYY-MM-DD)",
		city, Keycap(1), Keycap(2), Keycap(3))
}

// InvalidCheckinChoice re-asks the check-in menu.
func InvalidCheckinChoice() string {
	return "❌ Please reply with 1, 2 or 3."
}

// AskCheckinDate asks for a manual check-in date.
func AskCheckinDate() string {
	return "What is your check-in date? (YYYY-MM-DD)"
}

// BadDate rejects a malformed date.
func BadDate() string {
	return "❌ Please enter the date in YYYY-MM-DD format."
}

// PastCheckin rejects a check-in before today.
func PastCheckin() string {
	return "❌ Check-in cannot be in the past. Please enter today's date or later (YYYY-MM-DD)."
}

// PrevHotelPrompt offers to rebook the employee's last good stay.
func PrevHotelPrompt(offer entity.Offer) string {
	return fmt.Sprintf("Welcome back! Last time in %s you enjoyed %s (%s, $%d/night).\n%s Book it again\n%s See other options",
		offer.City, offer.Name, Stars(offer.Stars), offer.Price, Keycap(1), Keycap(2))
}

// InvalidPrevChoice re-asks the rebook question.
func InvalidPrevChoice() string {
	return "❌ Please reply 1 to book it again or 2 to see other options."
}

// Shortlist lists up to three offers with their menu markers.
func Shortlist(city string, offers []entity.Offer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the top hotels in %s:\n", city)
	for i, o := range offers {
		fmt.Fprintf(&b, "%s %s — %s, $%d/night\n", Keycap(i+1), o.Name, Stars(o.Stars), o.Price)
	}
	b.WriteString("Reply with the number of your choice.")
	return b.String()
}

// InvalidSelection re-asks the shortlist selection.
func InvalidSelection(count int) string {
	if count == 1 {
		return "❌ Please reply with 1 to pick the hotel shown."
	}
	return fmt.Sprintf("❌ Please reply with a number between 1 and %d.", count)
}

// NoHotels reports an empty shortlist and moves on to the check-out date.
func NoHotels(city string) string {
	return fmt.Sprintf("😕 No hotels available in %s right now, but I can still save your trip. What is your check-out date? (YYYY-MM-DD)", city)
}

// AskCheckout follows a hotel selection.
func AskCheckout(hotel string) string {
	if hotel == "" {
		return "What is your check-out date? (YYYY-MM-DD)"
	}
	return fmt.Sprintf("Great choice, %s it is! What is your check-out date? (YYYY-MM-DD)", hotel)
}

// CheckoutNotAfter rejects a check-out on or before the check-in.
func CheckoutNotAfter(checkin string) string {
	return fmt.Sprintf("❌ Check-out must be after your check-in (%s). Please enter a later date (YYYY-MM-DD).", checkin)
}

// Confirmation summarizes the completed booking.
func Confirmation(b *entity.Booking) string {
	var sb strings.Builder
	sb.WriteString("✅ Booking saved!\n")
	fmt.Fprintf(&sb, "👤 %s\n", b.Name)
	fmt.Fprintf(&sb, "🏙️ %s\n", b.Location)
	if b.SelectedHotel != "" {
		fmt.Fprintf(&sb, "🏨 %s ($%d/night)\n", b.SelectedHotel, b.SelectedPrice)
	}
	fmt.Fprintf(&sb, "📅 %s → %s\n", b.Checkin, b.Checkout)
	sb.WriteString("Type *restart* to make another booking.")
	return sb.String()
}

// BookAgainHint answers messages after completion.
func BookAgainHint() string {
	return "Type Hi to book again."
}

// TryAgain covers store failures; the user can safely resend.
func TryAgain() string {
	return "😓 Something went wrong on our side. Please resend your last message."
}

// Stars renders a star rating.
func Stars(n int) string {
	if n < 1 {
		return "unrated"
	}
	return strings.Repeat("⭐", n)
}
