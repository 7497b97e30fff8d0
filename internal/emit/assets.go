package emit

import "github.com/louisbranch/gameforge/internal/gamespec"

// Assets derives the external asset paths a generated project expects,
// purely from dimensionality and feature tags. Visual assets come first;
// the audio feature appends its entries in fixed order.
func Assets(dimension gamespec.Dimension, features []string) []string {
	var assets []string
	switch dimension {
	case gamespec.Dimension3D:
		assets = append(assets,
			"models/player.gltf",
			"textures/environment.png",
		)
	default:
		assets = append(assets,
			"sprites/player.png",
			"sprites/background.png",
		)
	}
	for _, feature := range features {
		if feature == "audio" {
			assets = append(assets,
				"audio/background_music.ogg",
				"audio/sound_effects.wav",
			)
			break
		}
	}
	return assets
}
