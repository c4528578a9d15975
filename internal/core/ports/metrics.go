package ports

// Login outcomes passed to ServiceMetrics.LoginAttempt.
const (
	LoginSuccess     = "success"
	LoginNotFound    = "not_found"
	LoginBadPassword = "bad_password"
	LoginNotAdmin    = "not_admin"
)

// ServiceMetrics receives business events from the services.
type ServiceMetrics interface {
	LoginAttempt(result string)
	UserCreated()
	MessageCreated()
	MessageDedup(hit bool)
}
