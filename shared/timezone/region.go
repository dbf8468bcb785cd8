package timezone

// TimezoneInfo describes the region behind an IANA timezone identifier.
// The zero value means the identifier is not in the table.
type TimezoneInfo struct {
	Continent string `json:"continent,omitempty"`
	Country   string `json:"country,omitempty"`
	LocalName string `json:"local_timezone_name,omitempty"`
}

// Resolve maps an IANA timezone identifier to its region triple.
// Lookup is exact-match only; an unmapped identifier returns the zero
// value, which is not an error condition.
func Resolve(tzID string) TimezoneInfo {
	return regions[tzID]
}

var regions = map[string]TimezoneInfo{
	"Africa/Abidjan":                 {Continent: "Africa", Country: "Ivory Coast", LocalName: "Greenwich Mean Time"},
	"Africa/Accra":                   {Continent: "Africa", Country: "Ghana", LocalName: "Greenwich Mean Time"},
	"Africa/Addis_Ababa":             {Continent: "Africa", Country: "Ethiopia", LocalName: "East Africa Time"},
	"Africa/Algiers":                 {Continent: "Africa", Country: "Algeria", LocalName: "Central European Time"},
	"Africa/Cairo":                   {Continent: "Africa", Country: "Egypt", LocalName: "Eastern European Time"},
	"Africa/Casablanca":              {Continent: "Africa", Country: "Morocco", LocalName: "Western European Time"},
	"Africa/Dar_es_Salaam":           {Continent: "Africa", Country: "Tanzania", LocalName: "East Africa Time"},
	"Africa/Johannesburg":            {Continent: "Africa", Country: "South Africa", LocalName: "South Africa Standard Time"},
	"Africa/Kampala":                 {Continent: "Africa", Country: "Uganda", LocalName: "East Africa Time"},
	"Africa/Khartoum":                {Continent: "Africa", Country: "Sudan", LocalName: "Central Africa Time"},
	"Africa/Kinshasa":                {Continent: "Africa", Country: "Democratic Republic of the Congo", LocalName: "West Africa Time"},
	"Africa/Lagos":                   {Continent: "Africa", Country: "Nigeria", LocalName: "West Africa Time"},
	"Africa/Nairobi":                 {Continent: "Africa", Country: "Kenya", LocalName: "East Africa Time"},
	"Africa/Tripoli":                 {Continent: "Africa", Country: "Libya", LocalName: "Eastern European Time"},
	"Africa/Tunis":                   {Continent: "Africa", Country: "Tunisia", LocalName: "Central European Time"},
	"Africa/Windhoek":                {Continent: "Africa", Country: "Namibia", LocalName: "Central Africa Time"},
	"America/Anchorage":              {Continent: "America", Country: "United States", LocalName: "Alaska Time"},
	"America/Argentina/Buenos_Aires": {Continent: "America", Country: "Argentina", LocalName: "Argentina Time"},
	"America/Asuncion":               {Continent: "America", Country: "Paraguay", LocalName: "Paraguay Time"},
	"America/Bogota":                 {Continent: "America", Country: "Colombia", LocalName: "Colombia Time"},
	"America/Caracas":                {Continent: "America", Country: "Venezuela", LocalName: "Venezuela Time"},
	"America/Chicago":                {Continent: "America", Country: "United States", LocalName: "Central Time"},
	"America/Costa_Rica":             {Continent: "America", Country: "Costa Rica", LocalName: "Central Standard Time"},
	"America/Denver":                 {Continent: "America", Country: "United States", LocalName: "Mountain Time"},
	"America/Edmonton":               {Continent: "America", Country: "Canada", LocalName: "Mountain Time"},
	"America/Guatemala":              {Continent: "America", Country: "Guatemala", LocalName: "Central Standard Time"},
	"America/Halifax":                {Continent: "America", Country: "Canada", LocalName: "Atlantic Time"},
	"America/Havana":                 {Continent: "America", Country: "Cuba", LocalName: "Cuba Time"},
	"America/La_Paz":                 {Continent: "America", Country: "Bolivia", LocalName: "Bolivia Time"},
	"America/Lima":                   {Continent: "America", Country: "Peru", LocalName: "Peru Time"},
	"America/Los_Angeles":            {Continent: "America", Country: "United States", LocalName: "Pacific Time"},
	"America/Mexico_City":            {Continent: "America", Country: "Mexico", LocalName: "Central Time"},
	"America/Montevideo":             {Continent: "America", Country: "Uruguay", LocalName: "Uruguay Time"},
	"America/New_York":               {Continent: "America", Country: "United States", LocalName: "Eastern Time"},
	"America/Panama":                 {Continent: "America", Country: "Panama", LocalName: "Eastern Standard Time"},
	"America/Phoenix":                {Continent: "America", Country: "United States", LocalName: "Mountain Standard Time"},
	"America/Regina":                 {Continent: "America", Country: "Canada", LocalName: "Central Standard Time"},
	"America/Santiago":               {Continent: "America", Country: "Chile", LocalName: "Chile Time"},
	"America/Santo_Domingo":          {Continent: "America", Country: "Dominican Republic", LocalName: "Atlantic Standard Time"},
	"America/Sao_Paulo":              {Continent: "America", Country: "Brazil", LocalName: "Brasilia Time"},
	"America/St_Johns":               {Continent: "America", Country: "Canada", LocalName: "Newfoundland Time"},
	"America/Tijuana":                {Continent: "America", Country: "Mexico", LocalName: "Pacific Time"},
	"America/Toronto":                {Continent: "America", Country: "Canada", LocalName: "Eastern Time"},
	"America/Vancouver":              {Continent: "America", Country: "Canada", LocalName: "Pacific Time"},
	"America/Winnipeg":               {Continent: "America", Country: "Canada", LocalName: "Central Time"},
	"Asia/Almaty":                    {Continent: "Asia", Country: "Kazakhstan", LocalName: "Alma-Ata Time"},
	"Asia/Amman":                     {Continent: "Asia", Country: "Jordan", LocalName: "Eastern European Time"},
	"Asia/Baghdad":                   {Continent: "Asia", Country: "Iraq", LocalName: "Arabia Standard Time"},
	"Asia/Bahrain":                   {Continent: "Asia", Country: "Bahrain", LocalName: "Arabia Standard Time"},
	"Asia/Baku":                      {Continent: "Asia", Country: "Azerbaijan", LocalName: "Azerbaijan Time"},
	"Asia/Bangkok":                   {Continent: "Asia", Country: "Thailand", LocalName: "Indochina Time"},
	"Asia/Beirut":                    {Continent: "Asia", Country: "Lebanon", LocalName: "Eastern European Time"},
	"Asia/Colombo":                   {Continent: "Asia", Country: "Sri Lanka", LocalName: "India Standard Time"},
	"Asia/Dhaka":                     {Continent: "Asia", Country: "Bangladesh", LocalName: "Bangladesh Standard Time"},
	"Asia/Dubai":                     {Continent: "Asia", Country: "United Arab Emirates", LocalName: "Gulf Standard Time"},
	"Asia/Ho_Chi_Minh":               {Continent: "Asia", Country: "Vietnam", LocalName: "Indochina Time"},
	"Asia/Hong_Kong":                 {Continent: "Asia", Country: "Hong Kong", LocalName: "Hong Kong Time"},
	"Asia/Jakarta":                   {Continent: "Asia", Country: "Indonesia", LocalName: "Western Indonesia Time"},
	"Asia/Jerusalem":                 {Continent: "Asia", Country: "Israel", LocalName: "Israel Standard Time"},
	"Asia/Kabul":                     {Continent: "Asia", Country: "Afghanistan", LocalName: "Afghanistan Time"},
	"Asia/Karachi":                   {Continent: "Asia", Country: "Pakistan", LocalName: "Pakistan Standard Time"},
	"Asia/Kathmandu":                 {Continent: "Asia", Country: "Nepal", LocalName: "Nepal Time"},
	"Asia/Kolkata":                   {Continent: "Asia", Country: "India", LocalName: "India Standard Time"},
	"Asia/Kuala_Lumpur":              {Continent: "Asia", Country: "Malaysia", LocalName: "Malaysia Time"},
	"Asia/Kuwait":                    {Continent: "Asia", Country: "Kuwait", LocalName: "Arabia Standard Time"},
	"Asia/Makassar":                  {Continent: "Asia", Country: "Indonesia", LocalName: "Central Indonesia Time"},
	"Asia/Manila":                    {Continent: "Asia", Country: "Philippines", LocalName: "Philippine Time"},
	"Asia/Muscat":                    {Continent: "Asia", Country: "Oman", LocalName: "Gulf Standard Time"},
	"Asia/Qatar":                     {Continent: "Asia", Country: "Qatar", LocalName: "Arabia Standard Time"},
	"Asia/Riyadh":                    {Continent: "Asia", Country: "Saudi Arabia", LocalName: "Arabia Standard Time"},
	"Asia/Seoul":                     {Continent: "Asia", Country: "South Korea", LocalName: "Korea Standard Time"},
	"Asia/Shanghai":                  {Continent: "Asia", Country: "China", LocalName: "China Standard Time"},
	"Asia/Singapore":                 {Continent: "Asia", Country: "Singapore", LocalName: "Singapore Time"},
	"Asia/Taipei":                    {Continent: "Asia", Country: "Taiwan", LocalName: "Taipei Standard Time"},
	"Asia/Tashkent":                  {Continent: "Asia", Country: "Uzbekistan", LocalName: "Uzbekistan Time"},
	"Asia/Tbilisi":                   {Continent: "Asia", Country: "Georgia", LocalName: "Georgia Time"},
	"Asia/Tehran":                    {Continent: "Asia", Country: "Iran", LocalName: "Iran Standard Time"},
	"Asia/Tokyo":                     {Continent: "Asia", Country: "Japan", LocalName: "Japan Standard Time"},
	"Asia/Ulaanbaatar":               {Continent: "Asia", Country: "Mongolia", LocalName: "Ulaanbaatar Time"},
	"Asia/Yangon":                    {Continent: "Asia", Country: "Myanmar", LocalName: "Myanmar Time"},
	"Asia/Yekaterinburg":             {Continent: "Asia", Country: "Russia", LocalName: "Yekaterinburg Time"},
	"Atlantic/Azores":                {Continent: "Atlantic", Country: "Portugal", LocalName: "Azores Time"},
	"Atlantic/Bermuda":               {Continent: "Atlantic", Country: "Bermuda", LocalName: "Atlantic Time"},
	"Atlantic/Canary":                {Continent: "Atlantic", Country: "Spain", LocalName: "Western European Time"},
	"Atlantic/Cape_Verde":            {Continent: "Atlantic", Country: "Cape Verde", LocalName: "Cape Verde Time"},
	"Atlantic/Reykjavik":             {Continent: "Atlantic", Country: "Iceland", LocalName: "Greenwich Mean Time"},
	"Australia/Adelaide":             {Continent: "Australia", Country: "Australia", LocalName: "Central Australia Time"},
	"Australia/Brisbane":             {Continent: "Australia", Country: "Australia", LocalName: "Eastern Australia Standard Time"},
	"Australia/Darwin":               {Continent: "Australia", Country: "Australia", LocalName: "Central Australia Standard Time"},
	"Australia/Hobart":               {Continent: "Australia", Country: "Australia", LocalName: "Eastern Australia Time"},
	"Australia/Melbourne":            {Continent: "Australia", Country: "Australia", LocalName: "Eastern Australia Time"},
	"Australia/Perth":                {Continent: "Australia", Country: "Australia", LocalName: "Western Australia Time"},
	"Australia/Sydney":               {Continent: "Australia", Country: "Australia", LocalName: "Eastern Australia Time"},
	"Europe/Amsterdam":               {Continent: "Europe", Country: "Netherlands", LocalName: "Central European Time"},
	"Europe/Athens":                  {Continent: "Europe", Country: "Greece", LocalName: "Eastern European Time"},
	"Europe/Belgrade":                {Continent: "Europe", Country: "Serbia", LocalName: "Central European Time"},
	"Europe/Berlin":                  {Continent: "Europe", Country: "Germany", LocalName: "Central European Time"},
	"Europe/Bratislava":              {Continent: "Europe", Country: "Slovakia", LocalName: "Central European Time"},
	"Europe/Brussels":                {Continent: "Europe", Country: "Belgium", LocalName: "Central European Time"},
	"Europe/Bucharest":               {Continent: "Europe", Country: "Romania", LocalName: "Eastern European Time"},
	"Europe/Budapest":                {Continent: "Europe", Country: "Hungary", LocalName: "Central European Time"},
	"Europe/Copenhagen":              {Continent: "Europe", Country: "Denmark", LocalName: "Central European Time"},
	"Europe/Dublin":                  {Continent: "Europe", Country: "Ireland", LocalName: "Greenwich Mean Time"},
	"Europe/Helsinki":                {Continent: "Europe", Country: "Finland", LocalName: "Eastern European Time"},
	"Europe/Istanbul":                {Continent: "Europe", Country: "Turkey", LocalName: "Turkey Time"},
	"Europe/Kyiv":                    {Continent: "Europe", Country: "Ukraine", LocalName: "Eastern European Time"},
	"Europe/Lisbon":                  {Continent: "Europe", Country: "Portugal", LocalName: "Western European Time"},
	"Europe/Ljubljana":               {Continent: "Europe", Country: "Slovenia", LocalName: "Central European Time"},
	"Europe/London":                  {Continent: "Europe", Country: "United Kingdom", LocalName: "Greenwich Mean Time"},
	"Europe/Luxembourg":              {Continent: "Europe", Country: "Luxembourg", LocalName: "Central European Time"},
	"Europe/Madrid":                  {Continent: "Europe", Country: "Spain", LocalName: "Central European Time"},
	"Europe/Minsk":                   {Continent: "Europe", Country: "Belarus", LocalName: "Moscow Time"},
	"Europe/Moscow":                  {Continent: "Europe", Country: "Russia", LocalName: "Moscow Time"},
	"Europe/Oslo":                    {Continent: "Europe", Country: "Norway", LocalName: "Central European Time"},
	"Europe/Paris":                   {Continent: "Europe", Country: "France", LocalName: "Central European Time"},
	"Europe/Prague":                  {Continent: "Europe", Country: "Czech Republic", LocalName: "Central European Time"},
	"Europe/Riga":                    {Continent: "Europe", Country: "Latvia", LocalName: "Eastern European Time"},
	"Europe/Rome":                    {Continent: "Europe", Country: "Italy", LocalName: "Central European Time"},
	"Europe/Sarajevo":                {Continent: "Europe", Country: "Bosnia and Herzegovina", LocalName: "Central European Time"},
	"Europe/Sofia":                   {Continent: "Europe", Country: "Bulgaria", LocalName: "Eastern European Time"},
	"Europe/Stockholm":               {Continent: "Europe", Country: "Sweden", LocalName: "Central European Time"},
	"Europe/Tallinn":                 {Continent: "Europe", Country: "Estonia", LocalName: "Eastern European Time"},
	"Europe/Vienna":                  {Continent: "Europe", Country: "Austria", LocalName: "Central European Time"},
	"Europe/Vilnius":                 {Continent: "Europe", Country: "Lithuania", LocalName: "Eastern European Time"},
	"Europe/Warsaw":                  {Continent: "Europe", Country: "Poland", LocalName: "Central European Time"},
	"Europe/Zagreb":                  {Continent: "Europe", Country: "Croatia", LocalName: "Central European Time"},
	"Europe/Zurich":                  {Continent: "Europe", Country: "Switzerland", LocalName: "Central European Time"},
	"Indian/Maldives":                {Continent: "Indian", Country: "Maldives", LocalName: "Maldives Time"},
	"Indian/Mauritius":               {Continent: "Indian", Country: "Mauritius", LocalName: "Mauritius Time"},
	"Pacific/Auckland":               {Continent: "Pacific", Country: "New Zealand", LocalName: "New Zealand Time"},
	"Pacific/Chatham":                {Continent: "Pacific", Country: "New Zealand", LocalName: "Chatham Time"},
	"Pacific/Fiji":                   {Continent: "Pacific", Country: "Fiji", LocalName: "Fiji Time"},
	"Pacific/Guam":                   {Continent: "Pacific", Country: "Guam", LocalName: "Chamorro Standard Time"},
	"Pacific/Honolulu":               {Continent: "Pacific", Country: "United States", LocalName: "Hawaii-Aleutian Standard Time"},
	"Pacific/Noumea":                 {Continent: "Pacific", Country: "New Caledonia", LocalName: "New Caledonia Time"},
	"Pacific/Pago_Pago":              {Continent: "Pacific", Country: "American Samoa", LocalName: "Samoa Standard Time"},
	"Pacific/Port_Moresby":           {Continent: "Pacific", Country: "Papua New Guinea", LocalName: "Papua New Guinea Time"},
	"Pacific/Tahiti":                 {Continent: "Pacific", Country: "French Polynesia", LocalName: "Tahiti Time"},
	"Pacific/Tongatapu":              {Continent: "Pacific", Country: "Tonga", LocalName: "Tonga Time"},
}
