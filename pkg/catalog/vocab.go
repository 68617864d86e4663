package catalog

var japaneseVocab = []Vocab{
	{Key: "YES", English: "yes", Japanese: "はい"},
	{Key: "NO", English: "no", Japanese: "いいえ"},
	{Key: "COMPUTER", English: "computer", Japanese: "コンピュータ"},
	{Key: "CAT", English: "cat", Japanese: "ねこ"},
	{Key: "DOG", English: "dog", Japanese: "いぬ"},
	{Key: "FOOD", English: "food", Japanese: "たべもの"},
	{Key: "DRINK", English: "drink", Japanese: "のみもの"},
	{Key: "TEACHER", English: "teacher", Japanese: "せんせい"},
	{Key: "THANK_YOU", English: "thank you", Japanese: "ありがと"},
	{Key: "SORRY", English: "I am sorry / excuse me", Japanese: "すみません"},
	{Key: "EXCUSE_ME", English: "(eh,) excuse me", Japanese: "あのう, すみません"},
	{Key: "YOU_ARE_WELCOME", English: "you are welcome", Japanese: "どういたしまして"},
	{Key: "GOOD_MORNING", English: "good morning", Japanese: "おはよう"},
	{Key: "GOOD_AFTERNOON", English: "good afternoon", Japanese: "こんにちわ"},
	{Key: "GOOD_EVENING", English: "good evening", Japanese: "こんばんわ"},
	{Key: "OH", English: "oh", Japanese: "ああ"},
	{Key: "WELCOME_HOME", English: "welcome back / welcome home", Japanese: "おかえりなさい"},
	{Key: "THANK_YOU_ALLOWING_ME_IN", English: "Excuse me for disturbing you / Greeting when entering someone's home",
		Japanese: "おじゃまします"},
	{Key: "IM_BACK", English: "I'm back! / I'm home!", Japanese: "ただいま"},
	{Key: "RED", English: "red", Japanese: "あか"},
	{Key: "GREEN", English: "green", Japanese: "みどり"},
	{Key: "BLUE", English: "blue", Japanese: "あお"},
	{Key: "PURPLE", English: "purple", Japanese: "むらさき"},
	{Key: "BROWN", English: "brown", Japanese: "ちゃいろ"},
	{Key: "BLACK", English: "black", Japanese: "くろ"},
	{Key: "WHITE", English: "white", Japanese: "しろ"},
	{Key: "GOLD", English: "gold", Japanese: "きん"},
	{Key: "SILVER", English: "silver", Japanese: "ぎん"},
	{Key: "ORANGE", English: "orange", Japanese: "だいだいいろ"},
	{Key: "GREY", English: "grey", Japanese: "はいいろ"},
}

var japaneseBasics = []Vocab{
	{Key: "PLEASE_GIVE_ME", English: "Please give me water.", Japanese: "みず おねがいします"},
	{Key: "IS_THERE", English: "Is there food?", Japanese: "たべもの が ありますか"},
	{Key: "HOW_MUCH", English: "How much does the beer cost?", Japanese: "ビール は いくらですか"},
	{Key: "WHERE_IS", English: "Where is the toilet?", Japanese: "トイレ は どこ ですか"},
	{Key: "WHAT_IS_YOUR_MAJOR", English: "What is your [school] major?", Japanese: "せんこう は なんですか"},
	{Key: "WHAT_YEAR_ARE_YOU", English: "What is your year [in school]?", Japanese: "なん ねんせい ですか"},
	{Key: "WHAT_IS_YOUR_JOB", English: "What is your job?", Japanese: "しごと は なん ですか"},
	{Key: "HOW_OLD_ARE_YOU", English: "How old are you?", Japanese: "なんさい ですか"},
	{Key: "HOW_MUCH_IS_THIS", English: "How much does this beer cost?", Japanese: "この ビール は いくら ですか"},
	{Key: "WHICH_DIRECTION_IS", English: "Which direction is the train station?", Japanese: "えき は どちら ですか"},
	{Key: "WHAT_TIME_DOES_START", English: "What time does the movie start?", Japanese: "えいが は なんじ に はじまりますか"},
	{Key: "PLEASE_REPEAT", English: "Could you please repeat [what you said]?", Japanese: "もいちど いってください"},
	{Key: "DID_NOT_UNDERSTAND", English: "Sorry, I did not understand [what you said].", Japanese: "すみません, わかりません でした"},
	{Key: "HOW_DO_YOU_SAY", English: "How do you say 'water' in Japanese?", Japanese: "water わ にほんご で なんといますか"},
	{Key: "WHAT_DO_YOU_DO_FOR_FUN", English: "What do you do for fun?", Japanese: "ひまのとき は なに お しますか"},
}
