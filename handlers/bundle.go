package handlers

// HandlerBundle groups the HTTP handlers assembled in main so route
// registration takes a single value.
type HandlerBundle struct {
	Service      *ServiceHandler
	Dashboard    *DashboardHandler
	Client       *ClientHandler
	Electrician  *ElectricianHandler
	Notification *NotificationHandler
}
