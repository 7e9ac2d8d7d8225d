package constants

const USER_AGENT = "savewatch/1.0 (+https://github.com/Amund211/savewatch)"

const DEFAULT_SAVE_SOURCE = "../saves/savegame.json"
