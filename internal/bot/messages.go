// internal/bot/messages.go
package bot

// All user-facing reply text lives here so the dialogue and logging code
// stays readable.

const (
	msgStart = "Hi! I track your water, calories and workouts.\n\n" +
		"Commands:\n" +
		"/set_profile — set up your profile\n" +
		"/log_water <ml> — log water\n" +
		"/log_food <food> — log food\n" +
		"/log_workout <type> <minutes> — log a workout\n" +
		"/check_progress — progress report\n" +
		"/help — help"

	msgHelp = "Examples:\n" +
		"/set_profile\n" +
		"/log_water 300\n" +
		"/log_food banana\n" +
		"/log_workout run 30\n" +
		"/check_progress"

	msgUnknown = "I didn't understand that. See /help for examples."

	msgConfigureFirst = "Set up your profile first: /set_profile"

	msgAskWeight      = "Enter your weight in kg, for example: 80"
	msgBadWeight      = "Weight must be a number in kg, for example 80"
	msgAskHeight      = "Enter your height in cm, for example: 184"
	msgBadHeight      = "Height must be a number in cm, for example 184"
	msgAskAge         = "Enter your age, for example: 26"
	msgBadAge         = "Age must be a whole number, for example 26"
	msgAskActivity    = "How many minutes of activity do you get per day? For example: 45"
	msgBadActivity    = "Activity must be a whole number of minutes, for example 45"
	msgAskCity        = "Which city are you in? For example: Moscow or Berlin"
	msgBadCity        = "Enter your city as text, for example Moscow"
	msgBadCalorieGoal = "Enter a number (for example 2500) or 'no'."
	msgGoalAccepted   = "Okay! Using the calculated goal. You can start logging."

	msgWaterUsage = "Usage: /log_water <ml>\nFor example: /log_water 300"
	msgBadWater   = "Water amount must be a number of ml between 1 and 5000, for example 300"

	msgFoodUsage    = "Usage: /log_food <name>\nFor example: /log_food banana"
	msgFoodNotFound = "Couldn't find that product.\n" +
		"Try an English name (banana, apple, yogurt) or a more generic one."
	msgBadGrams = "Enter grams as a number, for example: 150"

	msgWorkoutUsage = "Usage: /log_workout <type> <minutes>\nFor example: /log_workout run 30"
	msgBadMinutes   = "Minutes must be a whole number between 1 and 1000, for example 30"
)

const (
	fmtProfileSaved = "Profile saved.\n%s\n\n" +
		"Calculated for you:\n" +
		"Water goal: %d ml/day\n" +
		"Calorie goal: %d kcal/day\n\n" +
		"Want to set the calorie goal manually? Enter a number (for example 2500) or reply 'no'."
	fmtWeatherLine        = "Temperature in %s: %.1f°C"
	fmtWeatherUnavailable = "Weather for %s is unavailable"
	fmtManualGoalSet      = "Okay! Calorie goal set: %d kcal/day."

	fmtWaterLogged = "Logged: %d ml.\n" +
		"Drunk today: %.0f ml of %d ml.\n" +
		"Remaining: %.0f ml."

	fmtFoodFound = "%s — %.1f kcal per 100 g.\nHow many grams did you eat?"

	fmtFoodLogged = "Logged: %s, %.0f g = %.1f kcal.\n" +
		"Eaten today: %.1f kcal.\n" +
		"With workouts factored in, %.1f kcal left to your goal."

	fmtWorkoutLogged = "%s for %d min — %d kcal burned.\n" +
		"Water goal raised by %d ml."

	fmtProgress = "Progress:\n\n" +
		"Water:\n" +
		"- Drunk: %.0f ml of %d ml.\n" +
		"- Remaining: %.0f ml.\n\n" +
		"Calories:\n" +
		"- Eaten: %.1f kcal of %d kcal.\n" +
		"- Burned: %.1f kcal.\n" +
		"- Net: %.1f kcal.\n" +
		"- Left to goal: %.1f kcal."
)
