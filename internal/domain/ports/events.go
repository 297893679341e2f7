package ports

// Eventos publicados no feed ao vivo
const (
	EventHoroscopeCreated = "horoscope.created"
	EventBlogPublished    = "blog.published"
)

// EventPublisher entrega eventos de conteúdo aos assinantes sem bloquear
type EventPublisher interface {
	Publish(event string, payload any)
}

// ErrorReporter envia erros inesperados para um serviço externo
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
}
