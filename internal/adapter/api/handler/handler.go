package handler

import (
	"playsift/internal/usecase"
)

var (
	recommendationHandler *RecommendationHandler
	swipeHandler          *SwipeHandler
	sessionHandler        *SessionHandler
	dashboardHandler      *DashboardHandler
)

func Setup(
	swipeUseCase *usecase.SwipeUseCase,
	sessionUseCase *usecase.SessionUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	recommendationHandler = NewRecommendationHandler(swipeUseCase)
	swipeHandler = NewSwipeHandler(swipeUseCase)
	sessionHandler = NewSessionHandler(sessionUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetRecommendationHandler() *RecommendationHandler {
	return recommendationHandler
}

func GetSwipeHandler() *SwipeHandler {
	return swipeHandler
}

func GetSessionHandler() *SessionHandler {
	return sessionHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}
