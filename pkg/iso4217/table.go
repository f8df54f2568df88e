package iso4217

// table 为当前有效的 ISO 4217 币种（含贵金属与 SDR，Digits 为 -1 表示无小数位定义）。
var table = []Currency{
	{Code: "AED", Number: 784, Digits: 2, Name: "UAE dirham"},
	{Code: "AFN", Number: 971, Digits: 2, Name: "Afghan afghani"},
	{Code: "ALL", Number: 8, Digits: 2, Name: "Albanian lek"},
	{Code: "AMD", Number: 51, Digits: 2, Name: "Armenian dram"},
	{Code: "ANG", Number: 532, Digits: 2, Name: "Netherlands Antillean guilder"},
	{Code: "AOA", Number: 973, Digits: 2, Name: "Angolan kwanza"},
	{Code: "ARS", Number: 32, Digits: 2, Name: "Argentine peso"},
	{Code: "AUD", Number: 36, Digits: 2, Name: "Australian dollar"},
	{Code: "AWG", Number: 533, Digits: 2, Name: "Aruban florin"},
	{Code: "AZN", Number: 944, Digits: 2, Name: "Azerbaijani manat"},
	{Code: "BAM", Number: 977, Digits: 2, Name: "Bosnia and Herzegovina convertible mark"},
	{Code: "BBD", Number: 52, Digits: 2, Name: "Barbados dollar"},
	{Code: "BDT", Number: 50, Digits: 2, Name: "Bangladeshi taka"},
	{Code: "BGN", Number: 975, Digits: 2, Name: "Bulgarian lev"},
	{Code: "BHD", Number: 48, Digits: 3, Name: "Bahraini dinar"},
	{Code: "BIF", Number: 108, Digits: 0, Name: "Burundian franc"},
	{Code: "BMD", Number: 60, Digits: 2, Name: "Bermudian dollar"},
	{Code: "BND", Number: 96, Digits: 2, Name: "Brunei dollar"},
	{Code: "BOB", Number: 68, Digits: 2, Name: "Boliviano"},
	{Code: "BRL", Number: 986, Digits: 2, Name: "Brazilian real"},
	{Code: "BSD", Number: 44, Digits: 2, Name: "Bahamian dollar"},
	{Code: "BTN", Number: 64, Digits: 2, Name: "Bhutanese ngultrum"},
	{Code: "BWP", Number: 72, Digits: 2, Name: "Botswana pula"},
	{Code: "BYN", Number: 933, Digits: 2, Name: "Belarusian ruble"},
	{Code: "BZD", Number: 84, Digits: 2, Name: "Belize dollar"},
	{Code: "CAD", Number: 124, Digits: 2, Name: "Canadian dollar"},
	{Code: "CDF", Number: 976, Digits: 2, Name: "Congolese franc"},
	{Code: "CHF", Number: 756, Digits: 2, Name: "Swiss franc"},
	{Code: "CLP", Number: 152, Digits: 0, Name: "Chilean peso"},
	{Code: "CNY", Number: 156, Digits: 2, Name: "Renminbi"},
	{Code: "COP", Number: 170, Digits: 2, Name: "Colombian peso"},
	{Code: "CRC", Number: 188, Digits: 2, Name: "Costa Rican colon"},
	{Code: "CUP", Number: 192, Digits: 2, Name: "Cuban peso"},
	{Code: "CVE", Number: 132, Digits: 2, Name: "Cape Verdean escudo"},
	{Code: "CZK", Number: 203, Digits: 2, Name: "Czech koruna"},
	{Code: "DJF", Number: 262, Digits: 0, Name: "Djiboutian franc"},
	{Code: "DKK", Number: 208, Digits: 2, Name: "Danish krone"},
	{Code: "DOP", Number: 214, Digits: 2, Name: "Dominican peso"},
	{Code: "DZD", Number: 12, Digits: 2, Name: "Algerian dinar"},
	{Code: "EGP", Number: 818, Digits: 2, Name: "Egyptian pound"},
	{Code: "ERN", Number: 232, Digits: 2, Name: "Eritrean nakfa"},
	{Code: "ETB", Number: 230, Digits: 2, Name: "Ethiopian birr"},
	{Code: "EUR", Number: 978, Digits: 2, Name: "Euro"},
	{Code: "FJD", Number: 242, Digits: 2, Name: "Fiji dollar"},
	{Code: "FKP", Number: 238, Digits: 2, Name: "Falkland Islands pound"},
	{Code: "GBP", Number: 826, Digits: 2, Name: "Pound sterling"},
	{Code: "GEL", Number: 981, Digits: 2, Name: "Georgian lari"},
	{Code: "GHS", Number: 936, Digits: 2, Name: "Ghanaian cedi"},
	{Code: "GIP", Number: 292, Digits: 2, Name: "Gibraltar pound"},
	{Code: "GMD", Number: 270, Digits: 2, Name: "Gambian dalasi"},
	{Code: "GNF", Number: 324, Digits: 0, Name: "Guinean franc"},
	{Code: "GTQ", Number: 320, Digits: 2, Name: "Guatemalan quetzal"},
	{Code: "GYD", Number: 328, Digits: 2, Name: "Guyanese dollar"},
	{Code: "HKD", Number: 344, Digits: 2, Name: "Hong Kong dollar"},
	{Code: "HNL", Number: 340, Digits: 2, Name: "Honduran lempira"},
	{Code: "HTG", Number: 332, Digits: 2, Name: "Haitian gourde"},
	{Code: "HUF", Number: 348, Digits: 2, Name: "Hungarian forint"},
	{Code: "IDR", Number: 360, Digits: 2, Name: "Indonesian rupiah"},
	{Code: "ILS", Number: 376, Digits: 2, Name: "Israeli new shekel"},
	{Code: "INR", Number: 356, Digits: 2, Name: "Indian rupee"},
	{Code: "IQD", Number: 368, Digits: 3, Name: "Iraqi dinar"},
	{Code: "IRR", Number: 364, Digits: 2, Name: "Iranian rial"},
	{Code: "ISK", Number: 352, Digits: 0, Name: "Icelandic krona"},
	{Code: "JMD", Number: 388, Digits: 2, Name: "Jamaican dollar"},
	{Code: "JOD", Number: 400, Digits: 3, Name: "Jordanian dinar"},
	{Code: "JPY", Number: 392, Digits: 0, Name: "Japanese yen"},
	{Code: "KES", Number: 404, Digits: 2, Name: "Kenyan shilling"},
	{Code: "KGS", Number: 417, Digits: 2, Name: "Kyrgyzstani som"},
	{Code: "KHR", Number: 116, Digits: 2, Name: "Cambodian riel"},
	{Code: "KMF", Number: 174, Digits: 0, Name: "Comoro franc"},
	{Code: "KPW", Number: 408, Digits: 2, Name: "North Korean won"},
	{Code: "KRW", Number: 410, Digits: 0, Name: "South Korean won"},
	{Code: "KWD", Number: 414, Digits: 3, Name: "Kuwaiti dinar"},
	{Code: "KYD", Number: 136, Digits: 2, Name: "Cayman Islands dollar"},
	{Code: "KZT", Number: 398, Digits: 2, Name: "Kazakhstani tenge"},
	{Code: "LAK", Number: 418, Digits: 2, Name: "Lao kip"},
	{Code: "LBP", Number: 422, Digits: 2, Name: "Lebanese pound"},
	{Code: "LKR", Number: 144, Digits: 2, Name: "Sri Lankan rupee"},
	{Code: "LRD", Number: 430, Digits: 2, Name: "Liberian dollar"},
	{Code: "LSL", Number: 426, Digits: 2, Name: "Lesotho loti"},
	{Code: "LYD", Number: 434, Digits: 3, Name: "Libyan dinar"},
	{Code: "MAD", Number: 504, Digits: 2, Name: "Moroccan dirham"},
	{Code: "MDL", Number: 498, Digits: 2, Name: "Moldovan leu"},
	{Code: "MGA", Number: 969, Digits: 2, Name: "Malagasy ariary"},
	{Code: "MKD", Number: 807, Digits: 2, Name: "Macedonian denar"},
	{Code: "MMK", Number: 104, Digits: 2, Name: "Myanmar kyat"},
	{Code: "MNT", Number: 496, Digits: 2, Name: "Mongolian togrog"},
	{Code: "MOP", Number: 446, Digits: 2, Name: "Macanese pataca"},
	{Code: "MRU", Number: 929, Digits: 2, Name: "Mauritanian ouguiya"},
	{Code: "MUR", Number: 480, Digits: 2, Name: "Mauritian rupee"},
	{Code: "MVR", Number: 462, Digits: 2, Name: "Maldivian rufiyaa"},
	{Code: "MWK", Number: 454, Digits: 2, Name: "Malawian kwacha"},
	{Code: "MXN", Number: 484, Digits: 2, Name: "Mexican peso"},
	{Code: "MYR", Number: 458, Digits: 2, Name: "Malaysian ringgit"},
	{Code: "MZN", Number: 943, Digits: 2, Name: "Mozambican metical"},
	{Code: "NAD", Number: 516, Digits: 2, Name: "Namibian dollar"},
	{Code: "NGN", Number: 566, Digits: 2, Name: "Nigerian naira"},
	{Code: "NIO", Number: 558, Digits: 2, Name: "Nicaraguan cordoba"},
	{Code: "NOK", Number: 578, Digits: 2, Name: "Norwegian krone"},
	{Code: "NPR", Number: 524, Digits: 2, Name: "Nepalese rupee"},
	{Code: "NZD", Number: 554, Digits: 2, Name: "New Zealand dollar"},
	{Code: "OMR", Number: 512, Digits: 3, Name: "Omani rial"},
	{Code: "PAB", Number: 590, Digits: 2, Name: "Panamanian balboa"},
	{Code: "PEN", Number: 604, Digits: 2, Name: "Peruvian sol"},
	{Code: "PGK", Number: 598, Digits: 2, Name: "Papua New Guinean kina"},
	{Code: "PHP", Number: 608, Digits: 2, Name: "Philippine peso"},
	{Code: "PKR", Number: 586, Digits: 2, Name: "Pakistani rupee"},
	{Code: "PLN", Number: 985, Digits: 2, Name: "Polish zloty"},
	{Code: "PYG", Number: 600, Digits: 0, Name: "Paraguayan guarani"},
	{Code: "QAR", Number: 634, Digits: 2, Name: "Qatari riyal"},
	{Code: "RON", Number: 946, Digits: 2, Name: "Romanian leu"},
	{Code: "RSD", Number: 941, Digits: 2, Name: "Serbian dinar"},
	{Code: "RUB", Number: 643, Digits: 2, Name: "Russian ruble"},
	{Code: "RWF", Number: 646, Digits: 0, Name: "Rwandan franc"},
	{Code: "SAR", Number: 682, Digits: 2, Name: "Saudi riyal"},
	{Code: "SBD", Number: 90, Digits: 2, Name: "Solomon Islands dollar"},
	{Code: "SCR", Number: 690, Digits: 2, Name: "Seychelles rupee"},
	{Code: "SDG", Number: 938, Digits: 2, Name: "Sudanese pound"},
	{Code: "SEK", Number: 752, Digits: 2, Name: "Swedish krona"},
	{Code: "SGD", Number: 702, Digits: 2, Name: "Singapore dollar"},
	{Code: "SHP", Number: 654, Digits: 2, Name: "Saint Helena pound"},
	{Code: "SLE", Number: 925, Digits: 2, Name: "Sierra Leonean leone"},
	{Code: "SOS", Number: 706, Digits: 2, Name: "Somali shilling"},
	{Code: "SRD", Number: 968, Digits: 2, Name: "Surinamese dollar"},
	{Code: "SSP", Number: 728, Digits: 2, Name: "South Sudanese pound"},
	{Code: "STN", Number: 930, Digits: 2, Name: "Sao Tome and Principe dobra"},
	{Code: "SVC", Number: 222, Digits: 2, Name: "Salvadoran colon"},
	{Code: "SYP", Number: 760, Digits: 2, Name: "Syrian pound"},
	{Code: "SZL", Number: 748, Digits: 2, Name: "Swazi lilangeni"},
	{Code: "THB", Number: 764, Digits: 2, Name: "Thai baht"},
	{Code: "TJS", Number: 972, Digits: 2, Name: "Tajikistani somoni"},
	{Code: "TMT", Number: 934, Digits: 2, Name: "Turkmenistan manat"},
	{Code: "TND", Number: 788, Digits: 3, Name: "Tunisian dinar"},
	{Code: "TOP", Number: 776, Digits: 2, Name: "Tongan paanga"},
	{Code: "TRY", Number: 949, Digits: 2, Name: "Turkish lira"},
	{Code: "TTD", Number: 780, Digits: 2, Name: "Trinidad and Tobago dollar"},
	{Code: "TWD", Number: 901, Digits: 2, Name: "New Taiwan dollar"},
	{Code: "TZS", Number: 834, Digits: 2, Name: "Tanzanian shilling"},
	{Code: "UAH", Number: 980, Digits: 2, Name: "Ukrainian hryvnia"},
	{Code: "UGX", Number: 800, Digits: 0, Name: "Ugandan shilling"},
	{Code: "USD", Number: 840, Digits: 2, Name: "United States dollar"},
	{Code: "UYU", Number: 858, Digits: 2, Name: "Uruguayan peso"},
	{Code: "UZS", Number: 860, Digits: 2, Name: "Uzbekistan sum"},
	{Code: "VES", Number: 928, Digits: 2, Name: "Venezuelan bolivar soberano"},
	{Code: "VND", Number: 704, Digits: 0, Name: "Vietnamese dong"},
	{Code: "VUV", Number: 548, Digits: 0, Name: "Vanuatu vatu"},
	{Code: "WST", Number: 882, Digits: 2, Name: "Samoan tala"},
	{Code: "XAF", Number: 950, Digits: 0, Name: "CFA franc BEAC"},
	{Code: "XAG", Number: 961, Digits: -1, Name: "Silver"},
	{Code: "XAU", Number: 959, Digits: -1, Name: "Gold"},
	{Code: "XCD", Number: 951, Digits: 2, Name: "East Caribbean dollar"},
	{Code: "XDR", Number: 960, Digits: -1, Name: "Special drawing rights"},
	{Code: "XOF", Number: 952, Digits: 0, Name: "CFA franc BCEAO"},
	{Code: "XPD", Number: 964, Digits: -1, Name: "Palladium"},
	{Code: "XPF", Number: 953, Digits: 0, Name: "CFP franc"},
	{Code: "XPT", Number: 962, Digits: -1, Name: "Platinum"},
	{Code: "YER", Number: 886, Digits: 2, Name: "Yemeni rial"},
	{Code: "ZAR", Number: 710, Digits: 2, Name: "South African rand"},
	{Code: "ZMW", Number: 967, Digits: 2, Name: "Zambian kwacha"},
	{Code: "ZWL", Number: 932, Digits: 2, Name: "Zimbabwean dollar"},
}
