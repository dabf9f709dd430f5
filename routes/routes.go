package routes

import (
	"matchify/auth"
	"matchify/chat"
	"matchify/deliverables"
	"matchify/interviews"
	"matchify/middleware"
	"matchify/missions"
	"matchify/pay"
	"matchify/proposals"
	"matchify/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddMissionRoutes(router *httprouter.Router) {
	router.POST("/api/missions", middleware.Authenticate(missions.CreateMission))
	router.GET("/api/missions", middleware.OptionalAuth(missions.GetMissions))
	router.GET("/api/missions/:missionid", middleware.OptionalAuth(missions.GetMission))
	router.PUT("/api/missions/:missionid", middleware.Authenticate(missions.UpdateMission))
	router.POST("/api/missions/:missionid/complete", middleware.Authenticate(missions.MarkCompleted))
	router.POST("/api/missions/:missionid/approve", middleware.Authenticate(missions.ApproveCompletion))
}

func AddProposalRoutes(router *httprouter.Router) {
	router.POST("/api/missions/:missionid/proposals", middleware.Authenticate(proposals.CreateProposal))
	router.GET("/api/missions/:missionid/proposals", middleware.Authenticate(proposals.GetMissionProposals))
	router.GET("/api/proposals/:proposalid", middleware.Authenticate(proposals.GetProposal))
	router.PUT("/api/proposals/:proposalid/status", middleware.Authenticate(proposals.UpdateStatus))
}

func AddInterviewRoutes(router *httprouter.Router) {
	router.POST("/api/interviews", middleware.Authenticate(interviews.CreateInterview))
	router.GET("/api/interviews", middleware.Authenticate(interviews.GetUserInterviews))
	router.GET("/api/interviews/:interviewid", middleware.Authenticate(interviews.GetInterview))
	router.PUT("/api/interviews/:interviewid/status", middleware.Authenticate(interviews.UpdateStatus))
	router.GET("/api/interviews/:interviewid/qr", middleware.Authenticate(interviews.MeetLinkQR))
}

func AddDeliverableRoutes(router *httprouter.Router) {
	router.POST("/api/missions/:missionid/deliverables", middleware.Authenticate(deliverables.SubmitDeliverable))
	router.GET("/api/missions/:missionid/deliverables", middleware.Authenticate(deliverables.GetMissionDeliverables))
	router.POST("/api/deliverables/:deliverableid/approve", middleware.Authenticate(deliverables.Approve))
	router.POST("/api/deliverables/:deliverableid/revision", middleware.Authenticate(deliverables.RequestRevision))
	router.POST("/api/deliverables/:deliverableid/resubmit", middleware.Authenticate(deliverables.Resubmit))
}

func AddPayRoutes(router *httprouter.Router) {
	router.POST("/api/payments/intent/:missionid", middleware.Authenticate(pay.Idempotent(pay.CreateIntent)))
	router.POST("/api/payments/confirm", middleware.Authenticate(pay.Idempotent(pay.ConfirmPayment)))
	router.GET("/api/payments/transactions", middleware.Authenticate(pay.ListTransactions))
	router.GET("/api/payments/balance", middleware.Authenticate(pay.GetBalance))
	router.GET("/api/payments/receipt/:missionid", middleware.Authenticate(pay.DownloadReceipt))
}

func AddChatRoutes(router *httprouter.Router, hub *chat.Hub) {
	router.GET("/ws/missions/:missionid", middleware.Authenticate(chat.WebSocketHandler(hub)))
	router.GET("/api/missions/:missionid/messages", middleware.Authenticate(chat.GetMessages))
	router.GET("/api/chats/unread", middleware.Authenticate(chat.GetUnreadCounts))
}
