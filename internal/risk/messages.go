package risk

// Reasons appended by the adjustment rules.
const (
	reasonType1LongFast        = "Tipo 1 con ayuno prolongado (>6h): riesgo muy alto de hipoglucemia."
	reasonType1FastingExercise = "Tipo 1 con ayuno >4h y actividad física: mayor riesgo de hipoglucemia."
	reasonFastingExercise      = "Ayuno >4h combinado con actividad moderada/intensa aumenta el riesgo de hipoglucemia."
	reasonSleepStress          = "Sueño <6h y estrés alto: mayor probabilidad de hiperglucemia por cortisol elevado."
	reasonType2Sedentary       = "Tipo 2 + sedentarismo + estrés alto: factor para incremento de HbA1c a largo plazo."
	reasonCombinedFactors      = "Combinación de factores indica riesgo incrementado."
	reasonHighAggregate        = "Puntuación agregada elevada indica necesidad de atención médica."
)

// Recommendations tied to an adjustment rule.
const (
	recType1LongFast        = "Considere un snack con carbohidratos antes de períodos prolongados sin comer."
	recType1FastingExercise = "Si va a ejercitar, consuma 15-30g de carbohidratos antes del ejercicio."
	recFastingExercise      = "Si va a hacer ejercicio después de 4+ horas sin comer, consuma un snack ligero primero."
	recSleepStress          = "Priorice el descanso y técnicas de manejo del estrés. Monitoree su glucosa más frecuentemente."
	recType2Sedentary       = "Incorpore actividad física ligera diaria (caminar 30 min) y técnicas de relajación."
)

// Supplementary recommendations, added independently of the rules.
const (
	recMoreSleep       = "Intente dormir al menos 7-8 horas por noche para mejorar el control glucémico."
	recRelaxation      = "Practique técnicas de relajación (respiración profunda, meditación) para reducir el estrés."
	recDailyActivity   = "Incorpore actividad física ligera diaria, como caminar 30 minutos."
	recFrequentMeals   = "Evite períodos prolongados sin comer. Considere comidas pequeñas y frecuentes."
	msgLowRiskStatus   = "Sus hábitos actuales muestran un riesgo bajo. Mantenga estos patrones saludables."
	msgHoursSinceMeal  = "Por favor, ingrese un valor válido para las horas desde la última comida (0-24)."
	msgSleepHoursRange = "Por favor, ingrese un valor válido para las horas de sueño (0-24)."
)

// LowRiskStatus is the status line shown when no rule produced a reason.
func LowRiskStatus() string {
	return msgLowRiskStatus
}
