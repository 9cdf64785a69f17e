package usecase

import "html/template"

// All outbound emails are rendered from these templates and sent as raw HTML
// through the mail provider. Fields come from request.NotifyRequest.
var emailTemplates = map[NotificationType]*template.Template{
	NotificationBooking: template.Must(template.New("booking").Parse(`
<h2>New booking received</h2>
<p>Order <strong>{{.OrderID}}</strong> was just placed.</p>
<ul>
  <li>Experience: {{.ExperienceName}}</li>
  <li>Guest: {{.GuestName}} ({{.GuestEmail}})</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
  <li>Guests: {{.Guests}}</li>
  <li>Total: {{printf "%.2f" .TotalAmount}} {{.Currency}}</li>
</ul>
`)),

	NotificationPromoUsed: template.Must(template.New("promo_used").Parse(`
<h2>Your promo code was used</h2>
<p>Hi {{.HostName}},</p>
<p>Code <strong>{{.PromoCode}}</strong> was applied to order {{.OrderID}}
for {{.ExperienceName}}.</p>
<p>Your commission will be credited once the booking is confirmed.</p>
`)),

	NotificationVendorBooking: template.Must(template.New("vendor_booking").Parse(`
<h2>You have a new booking</h2>
<p>Hi {{.VendorName}},</p>
<p>{{.GuestName}} booked <strong>{{.ExperienceName}}</strong>.</p>
<ul>
  <li>Order: {{.OrderID}}</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
  <li>Guests: {{.Guests}}</li>
  <li>Total: {{printf "%.2f" .TotalAmount}} {{.Currency}}</li>
</ul>
<p>Guest contact: {{.GuestEmail}}</p>
`)),

	NotificationGuestConfirmation: template.Must(template.New("guest_confirmation").Parse(`
<h2>Your booking is confirmed</h2>
<p>Hi {{.GuestName}},</p>
<p>Your booking for <strong>{{.ExperienceName}}</strong> is confirmed.</p>
<ul>
  <li>Order: {{.OrderID}}</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
  <li>Guests: {{.Guests}}</li>
  <li>Total paid: {{printf "%.2f" .TotalAmount}} {{.Currency}}</li>
</ul>
<p>We look forward to seeing you!</p>
`)),

	NotificationBookingReminder: template.Must(template.New("booking_reminder").Parse(`
<h2>Your experience is coming up</h2>
<p>Hi {{.GuestName}},</p>
<p>A reminder that <strong>{{.ExperienceName}}</strong> takes place on
{{.BookingDate}} at {{.BookingTime}}.</p>
<p>Order reference: {{.OrderID}}</p>
`)),

	NotificationHostCommission: template.Must(template.New("host_commission").Parse(`
<h2>Commission earned</h2>
<p>Hi {{.HostName}},</p>
<p>Order {{.OrderID}} for {{.ExperienceName}} was confirmed through your
referral.</p>
<p>Commission earned: <strong>{{printf "%.2f" .CommissionAmount}} {{.Currency}}</strong></p>
`)),

	NotificationGuestCancellation: template.Must(template.New("guest_cancellation").Parse(`
<h2>Your booking has been cancelled</h2>
<p>Hi {{.GuestName}},</p>
<p>Your booking for <strong>{{.ExperienceName}}</strong> (order {{.OrderID}})
has been cancelled{{if not .GuestCancellation}} by the vendor{{end}}.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>Your refund of {{printf "%.2f" .TotalAmount}} {{.Currency}} will arrive in
5-10 business days.</p>
`)),

	NotificationVendorCancellation: template.Must(template.New("vendor_cancellation").Parse(`
<h2>A booking was cancelled</h2>
<p>Hi {{.VendorName}},</p>
<p>Order {{.OrderID}} for <strong>{{.ExperienceName}}</strong> on
{{.BookingDate}} at {{.BookingTime}} has been
cancelled{{if .GuestCancellation}} by the guest{{end}}.</p>
<p>The payout of <strong>{{printf "%.2f" .TotalAmount}} {{.Currency}}</strong>
for this booking will not be made.</p>
{{if .Reason}}<p>Reason given: {{.Reason}}</p>{{end}}
<p>The slot is available again.</p>
`)),
}
