package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/scheduler"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSessionSweep = "session-sweep"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SessionSweeperService *scheduler.SessionSweeperService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if _, ok := sessionIDFromRequest(r); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSessionSweep:
			if services.SessionSweeperService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sweeper de sessões não disponível", nil)
				return
			}
			services.SessionSweeperService.TriggerManualSweep()

		case CronJobTypeAll:
			if services.SessionSweeperService != nil {
				services.SessionSweeperService.TriggerManualSweep()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: session-sweep, all", nil)
			return
		}

		writeJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if _, ok := sessionIDFromRequest(r); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		status := make(map[string]any)
		if services.SessionSweeperService != nil {
			status["session_sweep"] = services.SessionSweeperService.GetStatus()
		}

		writeJSON(w, status)
	}
}
