package notification

import (
	"fmt"

	"theyool/models"
)

const (
	firmName  = "법무법인 더율"
	firmPhone = "02-1234-5678"
)

// EmailSubjects maps each lifecycle event to its email subject line.
var EmailSubjects = map[models.NotificationEvent]string{
	models.EventBookingCreated:   "[법무법인 더율] 상담 예약이 접수되었습니다",
	models.EventBookingConfirmed: "[법무법인 더율] 상담 예약이 확정되었습니다",
	models.EventBookingCancelled: "[법무법인 더율] 상담 예약이 취소되었습니다",
	models.EventBookingReminder:  "[법무법인 더율] 내일 상담 예약이 있습니다",
}

// EmailContent returns the subject and HTML body for an event.
func EmailContent(event models.NotificationEvent, booking *models.Booking) (subject, html string) {
	subject = EmailSubjects[event]

	var heading, lead string
	switch event {
	case models.EventBookingCreated:
		heading = "상담 예약이 접수되었습니다"
		lead = "법무법인 더율에 상담 예약을 신청해 주셔서 감사합니다. 확인 후 확정 안내를 드리겠습니다."
	case models.EventBookingConfirmed:
		heading = "상담 예약이 확정되었습니다"
		lead = "상담 예약이 확정되었습니다. 아래 일정을 확인해 주세요."
	case models.EventBookingCancelled:
		heading = "상담 예약이 취소되었습니다"
		lead = "상담 예약이 취소되었습니다. 다시 상담을 원하시면 언제든지 예약해 주세요."
	case models.EventBookingReminder:
		heading = "내일 상담 예약이 있습니다"
		lead = fmt.Sprintf("내일 %s에 예정된 상담 일정을 안내드립니다.", booking.PreferredTime)
	}

	html = fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<body style="margin:0;padding:24px;background-color:#f9fafb;font-family:'Apple SD Gothic Neo',sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h1 style="margin:0 0 24px 0;color:#111827;font-size:22px;font-weight:700;">%s</h1>
    <h2 style="margin:0 0 16px 0;color:#111827;font-size:18px;font-weight:600;">%s</h2>
    <p style="margin:0 0 24px 0;color:#374151;font-size:15px;line-height:1.6;">%s</p>
    <table style="width:100%%;border-collapse:collapse;background:#f3f4f6;border-radius:8px;">
      <tr><td style="padding:8px 16px;color:#9ca3af;font-size:14px;">예약자</td><td style="padding:8px 16px;color:#111827;font-size:14px;">%s</td></tr>
      <tr><td style="padding:8px 16px;color:#9ca3af;font-size:14px;">상담 날짜</td><td style="padding:8px 16px;color:#111827;font-size:14px;">%s</td></tr>
      <tr><td style="padding:8px 16px;color:#9ca3af;font-size:14px;">상담 시간</td><td style="padding:8px 16px;color:#111827;font-size:14px;">%s</td></tr>
      <tr><td style="padding:8px 16px;color:#9ca3af;font-size:14px;">상담 방식</td><td style="padding:8px 16px;color:#111827;font-size:14px;">%s</td></tr>
    </table>
    <p style="margin:24px 0 0 0;color:#6b7280;font-size:13px;">문의: %s</p>
  </div>
</body>
</html>`, firmName, heading, lead, booking.Name, booking.PreferredDate, booking.PreferredTime, consultationMethod(booking), firmPhone)

	return subject, html
}

// ClientSMS returns the client-facing SMS body for an event.
func ClientSMS(event models.NotificationEvent, booking *models.Booking) string {
	switch event {
	case models.EventBookingCreated:
		return fmt.Sprintf("[%s] %s님의 상담 예약이 접수되었습니다.\n\n📅 희망 일시: %s %s\n\n확인 후 확정 안내를 드리겠습니다.\n문의: %s",
			firmName, booking.Name, booking.PreferredDate, booking.PreferredTime, firmPhone)
	case models.EventBookingConfirmed:
		return fmt.Sprintf("[%s] %s님의 상담 예약이 확정되었습니다.\n\n📅 일시: %s %s\n%s\n\n준비물: 신분증, 관련 서류\n문의: %s",
			firmName, booking.Name, booking.PreferredDate, booking.PreferredTime, consultationMethodLine(booking), firmPhone)
	case models.EventBookingCancelled:
		return fmt.Sprintf("[%s] %s님의 상담 예약이 취소되었습니다.\n\n📅 취소된 일시: %s %s\n\n문의사항이 있으시면 연락 주세요.\n문의: %s",
			firmName, booking.Name, booking.PreferredDate, booking.PreferredTime, firmPhone)
	case models.EventBookingReminder:
		return fmt.Sprintf("[%s] %s님, 내일 상담 일정을 알려드립니다.\n\n📅 일시: %s %s\n%s\n\n잊지 말고 참석해 주세요!\n문의: %s",
			firmName, booking.Name, booking.PreferredDate, booking.PreferredTime, consultationMethodLine(booking), firmPhone)
	}
	return ""
}

// NewBookingAlertSMS is the office-facing alert for a fresh submission.
func NewBookingAlertSMS(booking *models.Booking) string {
	category := booking.Category
	if category == "" {
		category = "미분류"
	}
	return fmt.Sprintf("[더율] 새 상담 신청\n\n👤 %s\n📞 %s\n📋 %s\n📅 %s %s\n\n관리자 페이지에서 확인하세요.",
		booking.Name, booking.Phone, category, booking.PreferredDate, booking.PreferredTime)
}

func consultationMethod(booking *models.Booking) string {
	switch booking.Type {
	case models.BookingTypeVisit:
		return fmt.Sprintf("방문 상담 (%s 사무소)", booking.OfficeLocation)
	case models.BookingTypeVideo:
		return "화상 상담"
	default:
		return "전화 상담"
	}
}

func consultationMethodLine(booking *models.Booking) string {
	switch booking.Type {
	case models.BookingTypeVisit:
		return fmt.Sprintf("📍 방문 상담: %s 사무소", booking.OfficeLocation)
	case models.BookingTypeVideo:
		return "🎥 화상 상담 (링크는 상담 30분 전 발송)"
	default:
		return "📞 전화 상담"
	}
}
