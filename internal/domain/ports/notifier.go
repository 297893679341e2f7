package ports

// NotificationKind identifica o template de um email
type NotificationKind string

const (
	NotificationWelcome            NotificationKind = "welcome"
	NotificationContact            NotificationKind = "contact"
	NotificationAppointmentCreated NotificationKind = "appointment_created"
	NotificationMeetingLink        NotificationKind = "meeting_link"
)

// Notification é um email a ser entregue fora do ciclo da requisição
type Notification struct {
	Kind    NotificationKind
	To      string
	Subject string
	Data    map[string]any
}

// Notifier despacha notificações sem bloquear o chamador.
// Falhas de entrega nunca voltam para quem chamou; são apenas logadas.
type Notifier interface {
	Notify(n Notification)
}
