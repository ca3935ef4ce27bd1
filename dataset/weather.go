package dataset

import "strings"

// WeatherAttributes are the attributes of the Weather dataset that can be
// used to predict WeatherLabel, in their usual order.
var WeatherAttributes = []string{"outlook", "temp", "humidity", "windy"}

// WeatherLabel is the attribute to predict on the Weather dataset.
const WeatherLabel = "play"

/*
Weather returns the classic "play tennis" dataset: fourteen days described by
their outlook, temperature, humidity and wind, labeled with whether a game was
played.
*/
func Weather() Dataset {
	return Dataset{
		"outlook":  strings.Split("overcast,overcast,overcast,overcast,rainy,rainy,rainy,rainy,rainy,sunny,sunny,sunny,sunny,sunny", ","),
		"temp":     strings.Split("hot,cool,mild,hot,mild,cool,cool,mild,mild,hot,hot,mild,cool,mild", ","),
		"humidity": strings.Split("high,normal,high,normal,high,normal,normal,normal,high,high,high,high,normal,normal", ","),
		"windy":    strings.Split("weak,strong,strong,weak,weak,weak,strong,weak,strong,weak,strong,weak,weak,strong", ","),
		"play":     strings.Split("yes,yes,yes,yes,yes,yes,no,yes,no,no,no,no,yes,yes", ","),
	}
}
