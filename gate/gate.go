package gate

import (
	"log"

	"github.com/KJ-77/samihaproj/auth"
	"github.com/KJ-77/samihaproj/store"
)

// Страницы, на которые ведет навигация
const (
	LoginPage          = "login.html"
	AdminDashboardPage = "admin-dashboard.html"
	UserDashboardPage  = "user-dashboard.html"
)

// ProtectedRoutes сопоставляет тип карточки услуги с защищенной страницей
var ProtectedRoutes = map[string]string{
	"test":             "TEST.HTML",
	"custom":           "personalized-questions.html",
	"ready":            "ready-questions.html",
	"makenteh-courses": "courses.html",
}

// RoleInfo — статус входа и роль текущего пользователя
type RoleInfo struct {
	LoggedIn bool
	IsAdmin  bool
}

// Gate решает, куда пускать пользователя при защищенной навигации
type Gate struct {
	provider   auth.Provider
	state      *store.Store
	adminGroup string
}

// NewGate создает шлюз навигации
func NewGate(provider auth.Provider, state *store.Store, adminGroup string) *Gate {
	return &Gate{
		provider:   provider,
		state:      state,
		adminGroup: adminGroup,
	}
}

// ResolveSessionAndRole проверяет статус входа и роль пользователя.
// Никогда не возвращает ошибку: любая проблема провайдера означает
// "не вошел" и пишется в лог для диагностики.
func (g *Gate) ResolveSessionAndRole() RoleInfo {
	session, err := g.provider.CurrentSession()
	if err != nil {
		log.Printf("Session check failed: %v", err)
		return RoleInfo{}
	}

	if session == nil || !session.IsValid() {
		return RoleInfo{}
	}

	return RoleInfo{
		LoggedIn: true,
		IsAdmin:  session.InGroup(g.adminGroup),
	}
}

// NavigateProtected возвращает страницу, на которую нужно перейти
// по защищенному ключу маршрута:
//   - неизвестный ключ ведет на страницу входа;
//   - администратор всегда попадает на свой дашборд;
//   - вошедший пользователь попадает на запрошенную страницу;
//   - не вошедший отправляется на вход, а цель запоминается
//     для редиректа после входа.
func (g *Gate) NavigateProtected(routeKey string) string {
	target, known := ProtectedRoutes[routeKey]
	if !known {
		return LoginPage
	}

	info := g.ResolveSessionAndRole()

	if info.LoggedIn && info.IsAdmin {
		return AdminDashboardPage
	}

	if info.LoggedIn {
		return target
	}

	if err := g.state.Set(store.KeyRedirectAfterLogin, target); err != nil {
		log.Printf("Failed to store redirect target: %v", err)
	}
	return LoginPage
}

// DashboardPage возвращает дашборд по роли пользователя
func (g *Gate) DashboardPage() string {
	info := g.ResolveSessionAndRole()
	if !info.LoggedIn {
		return LoginPage
	}
	if info.IsAdmin {
		return AdminDashboardPage
	}
	return UserDashboardPage
}

// ConsumeRedirectAfterLogin возвращает отложенный редирект и удаляет его.
// Вызывается ровно один раз после успешного входа.
func (g *Gate) ConsumeRedirectAfterLogin() string {
	target, err := g.state.Consume(store.KeyRedirectAfterLogin)
	if err != nil {
		log.Printf("Failed to consume redirect target: %v", err)
		return ""
	}
	return target
}
